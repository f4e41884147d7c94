// Package rtx loads the NV ray tracing entry points from a graphics driver
// and forwards pipeline binding and ray dispatch to them.
//
// A Context is owned by the renderer, one per graphics context, and must
// only be used on the thread that owns that graphics context.
package rtx

import (
	"errors"
	"log/slog"
)

// Context tracks the extension state for one graphics context.
type Context struct {
	driver  Driver
	profile Profile
	logger  *slog.Logger
	ext     capability
}

// Option configures a Context.
type Option func(*Context)

// WithProfile selects the extension profile. The default is ProfileNV.
func WithProfile(p Profile) Option {
	return func(c *Context) {
		c.profile = p
	}
}

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an uninitialized Context over driver.
func New(driver Driver, opts ...Option) *Context {
	c := &Context{
		driver:  driver,
		profile: ProfileNV,
		logger:  slog.Default(),
		ext:     unavailable{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Profile returns the active profile.
func (c *Context) Profile() Profile {
	return c.profile
}

// IsSupported reports whether the driver advertises the extension.
func (c *Context) IsSupported() bool {
	if c.driver == nil {
		return false
	}
	return c.driver.ExtensionSupported(c.profile.Extension)
}

// Initialize resolves the entry points required by the profile. It returns
// nil immediately when the context is already initialized. On failure no
// entry point is retained.
func (c *Context) Initialize() error {
	if c.Initialized() {
		return nil
	}
	if err := c.profile.Validate(); err != nil {
		return err
	}
	if !c.IsSupported() {
		c.logger.Debug("Ray tracing extension not advertised", "extension", c.profile.Extension)
		return ErrUnsupported
	}

	b, err := resolve(c.driver, c.profile)
	if err != nil {
		c.ext = unavailable{}
		var missing *MissingProcError
		if errors.As(err, &missing) {
			c.logger.Debug("Ray tracing entry point missing", "proc", missing.Name)
		}
		return err
	}

	c.ext = b
	c.logger.Debug("Ray tracing extension initialized",
		"profile", c.profile.Name,
		"create", b.createPipelines != nil)
	return nil
}

// Initialized reports whether every required entry point is resolved.
func (c *Context) Initialized() bool {
	switch c.ext.(type) {
	case *bound:
		return true
	case unavailable:
		return false
	default:
		return false
	}
}

// CanCreatePipelines reports whether the pipeline creation entry point resolved.
func (c *Context) CanCreatePipelines() bool {
	b, ok := c.ext.(*bound)
	return ok && b.createPipelines != nil
}

// Reset drops every resolved entry point.
func (c *Context) Reset() {
	c.ext = unavailable{}
}

// BindPipeline makes pipeline the active ray tracing pipeline. The handle is
// passed to the driver as is.
func (c *Context) BindPipeline(pipeline PipelineHandle) error {
	return c.ext.bindPipeline(pipeline)
}

// TraceRays launches a ray dispatch with the given shader binding table
// regions and extent.
func (c *Context) TraceRays(p TraceRaysParams) error {
	return c.ext.traceRays(p)
}

// TraceRaysRegion launches width x height rays using one shader binding
// table region for raygen, miss, hit and callable groups.
func (c *Context) TraceRaysRegion(region SBTRegion, width, height uint32) error {
	return c.TraceRays(RegionParams(region, width, height))
}
