package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/restirnv/internal/rtx"
	"github.com/cwbudde/restirnv/internal/rtx/rtxtest"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input   string
		want    rtx.SBTRegion
		wantErr bool
	}{
		{input: "1,0,32", want: rtx.SBTRegion{Buffer: 1, Offset: 0, Stride: 32}},
		{input: " 2, 0x40 , 16", want: rtx.SBTRegion{Buffer: 2, Offset: 64, Stride: 16}},
		{input: "1,0", wantErr: true},
		{input: "1,a,2", wantErr: true},
		{input: "1,0,-3", wantErr: true},
		{input: "4294967296,0,0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseRegion(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildTraceParams(t *testing.T) {
	p, err := buildTraceParams("1,0,32", "", "3,128,48", "", 1920, 1080, 2, false)
	require.NoError(t, err)

	assert.Equal(t, rtx.SBTRegion{Buffer: 1, Stride: 32}, p.Miss, "omitted miss reuses raygen")
	assert.Equal(t, rtx.SBTRegion{Buffer: 3, Offset: 128, Stride: 48}, p.Hit)
	assert.Equal(t, rtx.SBTRegion{Buffer: 1, Stride: 32}, p.Callable)
	assert.Equal(t, uint32(2), p.Depth)

	p, err = buildTraceParams("1,0,32", "9,9,9", "", "", 640, 480, 7, true)
	require.NoError(t, err)
	assert.Equal(t, rtx.RegionParams(rtx.SBTRegion{Buffer: 1, Stride: 32}, 640, 480), p)

	_, err = buildTraceParams("1,0,32", "bad", "", "", 1, 1, 1, false)
	assert.ErrorContains(t, err, "miss")
}

func TestDispatch(t *testing.T) {
	drv := rtxtest.NewDriver(rtx.ProfileNV)
	ctx := rtx.New(drv)
	params := rtx.RegionParams(rtx.SBTRegion{Buffer: 1, Stride: 32}, 1920, 1080)

	require.NoError(t, dispatch(ctx, 5, params, 3))

	assert.Equal(t, []uint32{5}, drv.CallsTo("glBindRayTracingPipelineNV")[0].Args)
	traces := drv.CallsTo("glTraceRaysNV")
	require.Len(t, traces, 3)
	assert.Equal(t, params.Args(), traces[2].Args)
}

func TestDispatchUnsupported(t *testing.T) {
	drv := &rtxtest.Driver{}
	err := dispatch(rtx.New(drv), 5, rtx.TraceRaysParams{}, 1)

	assert.ErrorIs(t, err, rtx.ErrUnsupported)
	assert.Empty(t, drv.Calls)
}
