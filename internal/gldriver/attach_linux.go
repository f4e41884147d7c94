//go:build gpu && linux

package gldriver

/*
#cgo LDFLAGS: -lGL
#include <stdlib.h>

extern void *glXGetCurrentContext(void);
extern void (*glXGetProcAddressARB(const unsigned char *name))(void);

static void *restirnv_glx_proc(const char *name) {
	return (void *)glXGetProcAddressARB((const unsigned char *)name);
}
*/
import "C"

import "unsafe"

// Attach binds to the GLX context current on the calling thread.
//
// glXGetProcAddressARB may return a non-nil address for symbols the driver
// does not implement, so callers must check ExtensionSupported first.
func Attach() (*Driver, error) {
	if C.glXGetCurrentContext() == nil {
		return nil, ErrNoContext
	}
	return newDriver(glxProcAddress)
}

func glxProcAddress(name string) unsafe.Pointer {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.restirnv_glx_proc(cname)
}
