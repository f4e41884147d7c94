//go:build gpu && !linux && !windows

package gldriver

// Attach is unavailable without a platform loader; use Open instead.
func Attach() (*Driver, error) {
	return nil, ErrAttachUnsupported
}
