//go:build gpu && windows

package gldriver

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	opengl32                 = windows.NewLazySystemDLL("opengl32.dll")
	procWglGetProcAddress    = opengl32.NewProc("wglGetProcAddress")
	procWglGetCurrentContext = opengl32.NewProc("wglGetCurrentContext")
)

// Attach binds to the WGL context current on the calling thread.
func Attach() (*Driver, error) {
	if err := opengl32.Load(); err != nil {
		return nil, err
	}
	if hglrc, _, _ := procWglGetCurrentContext.Call(); hglrc == 0 {
		return nil, ErrNoContext
	}
	return newDriver(wglProcAddress)
}

func wglProcAddress(name string) unsafe.Pointer {
	cname, err := windows.BytePtrFromString(name)
	if err != nil {
		return nil
	}
	addr, _, _ := procWglGetProcAddress.Call(uintptr(unsafe.Pointer(cname)))

	// Some drivers report failure as 1, 2, 3 or -1 instead of 0. GL 1.1
	// entry points are only exported by opengl32.dll itself.
	switch addr {
	case 0, 1, 2, 3, ^uintptr(0):
		p := opengl32.NewProc(name)
		if p.Find() != nil {
			return nil
		}
		addr = p.Addr()
	}
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}
