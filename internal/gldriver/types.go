// Package gldriver backs rtx.Driver with the OpenGL driver of the current
// process. GPU support is compiled only with '-tags gpu'.
package gldriver

import "errors"

var (
	// ErrNotBuilt indicates the binary was built without GPU support.
	ErrNotBuilt = errors.New("gl driver support requires building with '-tags gpu'")
	// ErrNoContext indicates no GL context is current or one could not be created.
	ErrNoContext = errors.New("no current GL context")
	// ErrAttachUnsupported indicates Attach has no loader for this platform.
	ErrAttachUnsupported = errors.New("attaching to a host GL context is unsupported on this platform")
)

// Info describes the driver behind the current context.
type Info struct {
	Vendor     string
	Renderer   string
	Version    string
	Extensions int
}

// WindowConfig configures the hidden window created by Open.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	Major  int
	Minor  int
}

// DefaultWindowConfig requests a 4.6 core context, the version NV ray
// tracing drivers expose.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:  64,
		Height: 64,
		Title:  "restirnv",
		Major:  4,
		Minor:  6,
	}
}
