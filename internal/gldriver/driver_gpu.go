//go:build gpu

package gldriver

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cwbudde/restirnv/internal/rtx"
)

// Built reports whether GPU support is compiled in.
const Built = true

// Driver resolves entry points from the GL context current on the thread
// that created it. It must only be used on that thread.
type Driver struct {
	lookup func(name string) unsafe.Pointer
	exts   map[string]bool
	info   Info

	// window is set when the driver owns its context.
	window *glfw.Window
}

func newDriver(lookup func(name string) unsafe.Pointer) (*Driver, error) {
	if err := gl.InitWithProcAddrFunc(lookup); err != nil {
		return nil, fmt.Errorf("failed to load GL entry points: %w", err)
	}

	var count int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &count)

	exts := make(map[string]bool, int(count))
	for i := int32(0); i < count; i++ {
		exts[gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i)))] = true
	}

	d := &Driver{
		lookup: lookup,
		exts:   exts,
		info: Info{
			Vendor:     gl.GoStr(gl.GetString(gl.VENDOR)),
			Renderer:   gl.GoStr(gl.GetString(gl.RENDERER)),
			Version:    gl.GoStr(gl.GetString(gl.VERSION)),
			Extensions: int(count),
		},
	}
	slog.Debug("GL driver loaded",
		"vendor", d.info.Vendor,
		"renderer", d.info.Renderer,
		"version", d.info.Version,
		"extensions", d.info.Extensions)
	return d, nil
}

// ExtensionSupported implements rtx.Driver.
func (d *Driver) ExtensionSupported(name string) bool {
	return d.exts[name]
}

// ProcAddress implements rtx.Driver.
func (d *Driver) ProcAddress(name string) rtx.Proc {
	addr := d.lookup(name)
	if addr == nil {
		return nil
	}
	return &proc{name: name, addr: addr}
}

// Info returns the strings reported by the driver.
func (d *Driver) Info() Info {
	return d.info
}

// Close releases the window created by Open. Drivers from Attach leave the
// host context alone.
func (d *Driver) Close() {
	if d == nil || d.window == nil {
		return
	}
	d.window.Destroy()
	d.window = nil
	glfw.Terminate()
}
