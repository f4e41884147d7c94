//go:build !gpu

package gldriver

import "github.com/cwbudde/restirnv/internal/rtx"

// Built reports whether GPU support is compiled in.
const Built = false

// Driver is a placeholder when GPU support is not compiled.
type Driver struct{}

// Open returns an error when GPU support is not compiled in.
func Open(_ WindowConfig) (*Driver, error) {
	return nil, ErrNotBuilt
}

// Attach returns an error when GPU support is not compiled in.
func Attach() (*Driver, error) {
	return nil, ErrNotBuilt
}

// ExtensionSupported always reports false without GPU support.
func (d *Driver) ExtensionSupported(string) bool { return false }

// ProcAddress always reports unresolved without GPU support.
func (d *Driver) ProcAddress(string) rtx.Proc { return nil }

// Info is empty without GPU support.
func (d *Driver) Info() Info { return Info{} }

// Close is a no-op without GPU support.
func (d *Driver) Close() {}
