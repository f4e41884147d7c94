package main

import (
	"log/slog"

	"github.com/cwbudde/restirnv/internal/calltrace"
	"github.com/cwbudde/restirnv/internal/config"
	"github.com/cwbudde/restirnv/internal/gldriver"
	"github.com/cwbudde/restirnv/internal/rtx"
)

// host adapts one rtx.Context to the boolean C boundary. Errors are logged
// and reported as false.
type host struct {
	attach func() (rtx.Driver, func(), error)
	load   func() (config.Config, error)

	ctx     *rtx.Context
	release func()
	capture *calltrace.Writer
}

func newHost() *host {
	return &host{
		attach: attachGL,
		load:   config.LoadEnv,
	}
}

func attachGL() (rtx.Driver, func(), error) {
	d, err := gldriver.Attach()
	if err != nil {
		return nil, nil, err
	}
	return d, d.Close, nil
}

// context attaches to the current GL context on first use.
func (h *host) context() *rtx.Context {
	if h.ctx != nil {
		return h.ctx
	}

	cfg, err := h.load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return nil
	}
	profile, err := cfg.RTXProfile()
	if err != nil {
		slog.Error("Invalid profile", "error", err)
		return nil
	}

	driver, release, err := h.attach()
	if err != nil {
		slog.Debug("GL driver unavailable", "error", err)
		return nil
	}

	if cfg.Capture != "" {
		w, err := calltrace.NewWriter(cfg.Capture, true)
		if err != nil {
			slog.Warn("Capture disabled", "path", cfg.Capture, "error", err)
		} else {
			// Native hosts may never reach RestirReset.
			w.SetAutoFlush(true)
			h.capture = w
			driver = calltrace.Record(driver, w)
		}
	}

	h.ctx = rtx.New(driver, rtx.WithProfile(profile))
	h.release = release
	return h.ctx
}

// isSupported attaches on first use, which loads the config and opens the
// capture file. Later calls only query the driver.
func (h *host) isSupported() bool {
	ctx := h.context()
	return ctx != nil && ctx.IsSupported()
}

func (h *host) initialize() bool {
	ctx := h.context()
	if ctx == nil {
		return false
	}
	if err := ctx.Initialize(); err != nil {
		slog.Debug("Ray tracing initialization failed", "error", err)
		return false
	}
	return true
}

func (h *host) bindPipeline(pipeline uint32) bool {
	if h.ctx == nil {
		return false
	}
	return h.ctx.BindPipeline(rtx.PipelineHandle(pipeline)) == nil
}

func (h *host) traceRays(p rtx.TraceRaysParams) bool {
	if h.ctx == nil {
		return false
	}
	return h.ctx.TraceRays(p) == nil
}

// reset forgets the context so the next call attaches again.
func (h *host) reset() {
	if h.capture != nil {
		if err := h.capture.Close(); err != nil {
			slog.Warn("Failed to close capture", "error", err)
		}
		h.capture = nil
	}
	if h.release != nil {
		h.release()
		h.release = nil
	}
	h.ctx = nil
}
