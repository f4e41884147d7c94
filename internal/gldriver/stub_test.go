//go:build !gpu

package gldriver

import (
	"errors"
	"testing"
)

func TestStubReportsNotBuilt(t *testing.T) {
	if _, err := Open(DefaultWindowConfig()); !errors.Is(err, ErrNotBuilt) {
		t.Errorf("Open: expected ErrNotBuilt, got %v", err)
	}
	if _, err := Attach(); !errors.Is(err, ErrNotBuilt) {
		t.Errorf("Attach: expected ErrNotBuilt, got %v", err)
	}

	if Built {
		t.Error("stub build must not report GPU support")
	}

	var d Driver
	if d.ExtensionSupported("GL_NV_ray_tracing") {
		t.Error("stub driver must not report extensions")
	}
	if d.ProcAddress("glTraceRaysNV") != nil {
		t.Error("stub driver must not resolve procs")
	}
}
