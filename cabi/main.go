// Command cabi builds the C-shared library exposing the ray tracing
// loader to native renderers:
//
//	go build -tags gpu -buildmode=c-shared -o librestirnv.so ./cabi
//
// Every entry point must be called on the thread that owns the GL context.
package main

/*
#include <stdbool.h>
*/
import "C"

import "github.com/cwbudde/restirnv/internal/rtx"

var current = newHost()

// RestirIsSupported reports whether the current GL context advertises the
// extension. The first call of any entry point attaches to that context,
// loads RESTIRNV_CONFIG and opens the configured capture.
//
//export RestirIsSupported
func RestirIsSupported() C.bool {
	return C.bool(current.isSupported())
}

//export RestirInitialize
func RestirInitialize() C.bool {
	return C.bool(current.initialize())
}

//export RestirBindPipeline
func RestirBindPipeline(pipeline C.uint) C.bool {
	return C.bool(current.bindPipeline(uint32(pipeline)))
}

//export RestirTraceRays
func RestirTraceRays(
	raygenBuffer, raygenOffset, raygenStride C.uint,
	missBuffer, missOffset, missStride C.uint,
	hitBuffer, hitOffset, hitStride C.uint,
	callableBuffer, callableOffset, callableStride C.uint,
	width, height, depth C.uint,
) C.bool {
	return C.bool(current.traceRays(rtx.TraceRaysParams{
		Raygen:   rtx.SBTRegion{Buffer: uint32(raygenBuffer), Offset: uint32(raygenOffset), Stride: uint32(raygenStride)},
		Miss:     rtx.SBTRegion{Buffer: uint32(missBuffer), Offset: uint32(missOffset), Stride: uint32(missStride)},
		Hit:      rtx.SBTRegion{Buffer: uint32(hitBuffer), Offset: uint32(hitOffset), Stride: uint32(hitStride)},
		Callable: rtx.SBTRegion{Buffer: uint32(callableBuffer), Offset: uint32(callableOffset), Stride: uint32(callableStride)},
		Width:    uint32(width),
		Height:   uint32(height),
		Depth:    uint32(depth),
	}))
}

//export RestirTraceRaysRegion
func RestirTraceRaysRegion(buffer, offset, stride, width, height C.uint) C.bool {
	region := rtx.SBTRegion{Buffer: uint32(buffer), Offset: uint32(offset), Stride: uint32(stride)}
	return C.bool(current.traceRays(rtx.RegionParams(region, uint32(width), uint32(height))))
}

//export RestirReset
func RestirReset() {
	current.reset()
}

func main() {}
