package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/restirnv/internal/gldriver"
	"github.com/cwbudde/restirnv/internal/rtx"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Report driver support for the ray tracing extension",
	Long: `Creates a hidden GL context, prints the driver strings, and reports
whether the configured extension profile initializes.`,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	profile, err := cfg.RTXProfile()
	if err != nil {
		return err
	}

	d, err := gldriver.Open(gldriver.DefaultWindowConfig())
	if err != nil {
		return fmt.Errorf("failed to open GL context: %w", err)
	}
	defer d.Close()

	ctx := rtx.New(d, rtx.WithProfile(profile), rtx.WithLogger(logger))
	printProbe(cmd.OutOrStdout(), d.Info(), ctx)
	return nil
}

func printProbe(w io.Writer, info gldriver.Info, ctx *rtx.Context) {
	profile := ctx.Profile()

	fmt.Fprintln(w, "Driver:")
	fmt.Fprintf(w, "  Vendor: %s\n", info.Vendor)
	fmt.Fprintf(w, "  Renderer: %s\n", info.Renderer)
	fmt.Fprintf(w, "  Version: %s\n", info.Version)
	fmt.Fprintf(w, "  Extensions: %d\n", info.Extensions)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Profile: %s\n", profile.Name)
	fmt.Fprintf(w, "  Extension: %s\n", profile.Extension)
	fmt.Fprintf(w, "  Supported: %t\n", ctx.IsSupported())

	if err := ctx.Initialize(); err != nil {
		fmt.Fprintf(w, "  Initialized: false (%v)\n", err)
		return
	}
	fmt.Fprintln(w, "  Initialized: true")
	fmt.Fprintf(w, "  Pipeline creation: %t\n", ctx.CanCreatePipelines())
}
