//go:build gpu

package gldriver

/*
#if defined(_WIN32) && !defined(_WIN64)
#define RESTIRNV_APIENTRY __stdcall
#else
#define RESTIRNV_APIENTRY
#endif

typedef unsigned int restirnv_uint;

typedef void (RESTIRNV_APIENTRY *restirnv_fn1)(restirnv_uint);
typedef void (RESTIRNV_APIENTRY *restirnv_fn15)(
	restirnv_uint, restirnv_uint, restirnv_uint,
	restirnv_uint, restirnv_uint, restirnv_uint,
	restirnv_uint, restirnv_uint, restirnv_uint,
	restirnv_uint, restirnv_uint, restirnv_uint,
	restirnv_uint, restirnv_uint, restirnv_uint);

static void restirnv_call1(void *fn, restirnv_uint a0) {
	((restirnv_fn1)fn)(a0);
}

static void restirnv_call15(void *fn, const restirnv_uint *a) {
	((restirnv_fn15)fn)(
		a[0], a[1], a[2],
		a[3], a[4], a[5],
		a[6], a[7], a[8],
		a[9], a[10], a[11],
		a[12], a[13], a[14]);
}
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// proc calls a driver entry point taking only GLuint arguments.
type proc struct {
	name string
	addr unsafe.Pointer
}

// Call implements rtx.Proc. Only the arities of glBindRayTracingPipelineNV
// and glTraceRaysNV are supported.
func (p *proc) Call(args ...uint32) {
	switch len(args) {
	case 1:
		C.restirnv_call1(p.addr, C.restirnv_uint(args[0]))
	case 15:
		var a [15]C.restirnv_uint
		for i, v := range args {
			a[i] = C.restirnv_uint(v)
		}
		C.restirnv_call15(p.addr, &a[0])
	default:
		panic(fmt.Sprintf("gldriver: %s called with unsupported arity %d", p.name, len(args)))
	}
}
