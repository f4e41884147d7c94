package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/restirnv/internal/calltrace"
	"github.com/cwbudde/restirnv/internal/gldriver"
	"github.com/cwbudde/restirnv/internal/rtx"
)

var (
	pipeline    uint32
	raygenSBT   string
	missSBT     string
	hitSBT      string
	callableSBT string
	width       uint32
	height      uint32
	depth       uint32
	regionOnly  bool
	capturePath string
	repeat      int
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Bind a pipeline and dispatch rays",
	Long: `Initializes the extension on a hidden GL context, binds the given
pipeline and dispatches rays. SBT regions are given as buffer,offset,stride.
Omitted miss, hit and callable regions reuse the raygen region.`,
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().Uint32Var(&pipeline, "pipeline", 0, "Ray tracing pipeline name (required)")
	traceCmd.Flags().StringVar(&raygenSBT, "raygen", "", "Raygen SBT region buffer,offset,stride (required)")
	traceCmd.Flags().StringVar(&missSBT, "miss", "", "Miss SBT region")
	traceCmd.Flags().StringVar(&hitSBT, "hit", "", "Hit group SBT region")
	traceCmd.Flags().StringVar(&callableSBT, "callable", "", "Callable SBT region")
	traceCmd.Flags().Uint32Var(&width, "width", 1920, "Launch width")
	traceCmd.Flags().Uint32Var(&height, "height", 1080, "Launch height")
	traceCmd.Flags().Uint32Var(&depth, "depth", 1, "Launch depth")
	traceCmd.Flags().BoolVar(&regionOnly, "region", false, "Use the raygen region for every group with depth 1")
	traceCmd.Flags().StringVar(&capturePath, "capture", "", "Write forwarded calls to a JSONL capture")
	traceCmd.Flags().IntVar(&repeat, "repeat", 1, "Number of dispatches")

	traceCmd.MarkFlagRequired("pipeline")
	traceCmd.MarkFlagRequired("raygen")
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	params, err := buildTraceParams(raygenSBT, missSBT, hitSBT, callableSBT, width, height, depth, regionOnly)
	if err != nil {
		return err
	}
	if repeat < 1 {
		return fmt.Errorf("repeat must be positive, got %d", repeat)
	}

	profile, err := cfg.RTXProfile()
	if err != nil {
		return err
	}

	d, err := gldriver.Open(gldriver.DefaultWindowConfig())
	if err != nil {
		return fmt.Errorf("failed to open GL context: %w", err)
	}
	defer d.Close()

	var driver rtx.Driver = d
	path := capturePath
	if path == "" {
		path = cfg.Capture
	}
	if path != "" {
		w, err := calltrace.NewWriter(path, false)
		if err != nil {
			return err
		}
		defer func() {
			if err := w.Close(); err != nil {
				slog.Error("Failed to close capture", "error", err)
			}
		}()
		driver = calltrace.Record(driver, w)
		slog.Info("Capturing calls", "path", w.Path())
	}

	ctx := rtx.New(driver, rtx.WithProfile(profile), rtx.WithLogger(logger))
	return dispatch(ctx, rtx.PipelineHandle(pipeline), params, repeat)
}

// dispatch initializes ctx, binds pipeline and traces n times.
func dispatch(ctx *rtx.Context, pipeline rtx.PipelineHandle, params rtx.TraceRaysParams, n int) error {
	if err := ctx.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize %s: %w", ctx.Profile().Extension, err)
	}
	if err := ctx.BindPipeline(pipeline); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := ctx.TraceRays(params); err != nil {
			return err
		}
	}
	slog.Info("Dispatched rays",
		"pipeline", pipeline,
		"width", params.Width,
		"height", params.Height,
		"depth", params.Depth,
		"count", n)
	return nil
}

func buildTraceParams(raygen, miss, hit, callable string, w, h, d uint32, region bool) (rtx.TraceRaysParams, error) {
	rg, err := parseRegion(raygen)
	if err != nil {
		return rtx.TraceRaysParams{}, fmt.Errorf("raygen: %w", err)
	}
	if region {
		return rtx.RegionParams(rg, w, h), nil
	}

	p := rtx.TraceRaysParams{Raygen: rg, Width: w, Height: h, Depth: d}
	for _, g := range []struct {
		name  string
		value string
		dst   *rtx.SBTRegion
	}{
		{"miss", miss, &p.Miss},
		{"hit", hit, &p.Hit},
		{"callable", callable, &p.Callable},
	} {
		if g.value == "" {
			*g.dst = rg
			continue
		}
		r, err := parseRegion(g.value)
		if err != nil {
			return rtx.TraceRaysParams{}, fmt.Errorf("%s: %w", g.name, err)
		}
		*g.dst = r
	}
	return p, nil
}

// parseRegion parses "buffer,offset,stride".
func parseRegion(s string) (rtx.SBTRegion, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return rtx.SBTRegion{}, fmt.Errorf("invalid SBT region %q: want buffer,offset,stride", s)
	}

	var vals [3]uint32
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 0, 32)
		if err != nil {
			return rtx.SBTRegion{}, fmt.Errorf("invalid SBT region %q: %w", s, err)
		}
		vals[i] = uint32(v)
	}
	return rtx.SBTRegion{Buffer: vals[0], Offset: vals[1], Stride: vals[2]}, nil
}
