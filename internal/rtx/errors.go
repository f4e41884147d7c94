package rtx

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported indicates the driver does not advertise the extension.
	ErrUnsupported = errors.New("ray tracing extension unsupported")
	// ErrNotInitialized is returned by forwarding calls before a successful Initialize.
	ErrNotInitialized = errors.New("ray tracing extension not initialized")
	// ErrMissingProc indicates a required entry point could not be resolved.
	ErrMissingProc = errors.New("ray tracing entry point missing")
	// ErrInvalidProfile indicates a profile with empty symbol names.
	ErrInvalidProfile = errors.New("invalid extension profile")
)

// MissingProcError names the entry point that failed to resolve.
type MissingProcError struct {
	Name string
}

func (e *MissingProcError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingProc, e.Name)
}

// Is reports ErrMissingProc as the sentinel for this error.
func (e *MissingProcError) Is(target error) bool {
	return target == ErrMissingProc
}
