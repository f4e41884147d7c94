package rtx

// PipelineHandle is a driver-assigned ray tracing pipeline name.
type PipelineHandle uint32

// SBTRegion locates one shader binding table group inside a buffer.
type SBTRegion struct {
	Buffer uint32
	Offset uint32
	Stride uint32
}

// TraceRaysParams carries the full glTraceRaysNV argument list.
type TraceRaysParams struct {
	Raygen   SBTRegion
	Miss     SBTRegion
	Hit      SBTRegion
	Callable SBTRegion

	Width  uint32
	Height uint32
	Depth  uint32
}

// RegionParams reuses one region for every group and launches a single layer.
func RegionParams(region SBTRegion, width, height uint32) TraceRaysParams {
	return TraceRaysParams{
		Raygen:   region,
		Miss:     region,
		Hit:      region,
		Callable: region,
		Width:    width,
		Height:   height,
		Depth:    1,
	}
}

// Args flattens p into driver argument order.
func (p TraceRaysParams) Args() []uint32 {
	return []uint32{
		p.Raygen.Buffer, p.Raygen.Offset, p.Raygen.Stride,
		p.Miss.Buffer, p.Miss.Offset, p.Miss.Stride,
		p.Hit.Buffer, p.Hit.Offset, p.Hit.Stride,
		p.Callable.Buffer, p.Callable.Offset, p.Callable.Stride,
		p.Width, p.Height, p.Depth,
	}
}
