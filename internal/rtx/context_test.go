package rtx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/cwbudde/restirnv/internal/rtx"
	"github.com/cwbudde/restirnv/internal/rtx/rtxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleParams = rtx.TraceRaysParams{
	Raygen:   rtx.SBTRegion{Buffer: 1, Offset: 0, Stride: 32},
	Miss:     rtx.SBTRegion{Buffer: 2, Offset: 64, Stride: 32},
	Hit:      rtx.SBTRegion{Buffer: 3, Offset: 128, Stride: 48},
	Callable: rtx.SBTRegion{Buffer: 4, Offset: 256, Stride: 16},
	Width:    1920,
	Height:   1080,
	Depth:    1,
}

func TestInitializeUnsupported(t *testing.T) {
	drv := &rtxtest.Driver{}
	ctx := rtx.New(drv)

	assert.False(t, ctx.IsSupported())
	assert.ErrorIs(t, ctx.Initialize(), rtx.ErrUnsupported)
	assert.False(t, ctx.Initialized())
	assert.Empty(t, drv.Lookups, "no lookups without the extension")

	assert.ErrorIs(t, ctx.BindPipeline(7), rtx.ErrNotInitialized)
	assert.ErrorIs(t, ctx.TraceRays(sampleParams), rtx.ErrNotInitialized)
	assert.Empty(t, drv.Calls)
}

func TestInitializeIdempotent(t *testing.T) {
	drv := rtxtest.NewDriver(rtx.ProfileNV)
	ctx := rtx.New(drv)

	require.NoError(t, ctx.Initialize())
	lookups := len(drv.Lookups)
	require.NoError(t, ctx.Initialize())

	assert.True(t, ctx.Initialized())
	assert.Len(t, drv.Lookups, lookups, "second Initialize must not resolve again")
	assert.Equal(t, []string{
		"glCreateRayTracingPipelinesNV",
		"glBindRayTracingPipelineNV",
		"glTraceRaysNV",
	}, drv.Lookups)

	require.NoError(t, ctx.BindPipeline(3))
	assert.Len(t, drv.CallsTo("glBindRayTracingPipelineNV"), 1)
}

func TestInitializeAllOrNothing(t *testing.T) {
	for _, missing := range rtx.ProfileNV.Required() {
		t.Run(missing, func(t *testing.T) {
			drv := rtxtest.NewDriver(rtx.ProfileNV)
			drv.Missing = []string{missing}
			ctx := rtx.New(drv)

			err := ctx.Initialize()
			require.ErrorIs(t, err, rtx.ErrMissingProc)

			var mpe *rtx.MissingProcError
			require.True(t, errors.As(err, &mpe))
			assert.Equal(t, missing, mpe.Name)

			assert.False(t, ctx.Initialized())
			assert.False(t, ctx.CanCreatePipelines())
			assert.ErrorIs(t, ctx.BindPipeline(1), rtx.ErrNotInitialized)
			assert.ErrorIs(t, ctx.TraceRays(sampleParams), rtx.ErrNotInitialized)
			assert.Empty(t, drv.Calls, "no stale entry point may be invoked")
		})
	}
}

func TestInitializeRecoversAfterFailure(t *testing.T) {
	drv := rtxtest.NewDriver(rtx.ProfileNV)
	drv.Missing = []string{"glTraceRaysNV"}
	ctx := rtx.New(drv)

	require.Error(t, ctx.Initialize())

	drv.Missing = nil
	require.NoError(t, ctx.Initialize())
	assert.NoError(t, ctx.TraceRays(sampleParams))
}

func TestBindTraceProfileSkipsCreate(t *testing.T) {
	drv := rtxtest.NewDriver(rtx.ProfileNVBindTrace)
	drv.Missing = []string{"glCreateRayTracingPipelinesNV"}
	ctx := rtx.New(drv, rtx.WithProfile(rtx.ProfileNVBindTrace))

	require.NoError(t, ctx.Initialize())
	assert.True(t, ctx.Initialized())
	assert.False(t, ctx.CanCreatePipelines())

	drv = rtxtest.NewDriver(rtx.ProfileNV)
	drv.Missing = []string{"glCreateRayTracingPipelinesNV"}
	ctx = rtx.New(drv)
	assert.ErrorIs(t, ctx.Initialize(), rtx.ErrMissingProc)
}

func TestTraceRaysForwardsVerbatim(t *testing.T) {
	drv := rtxtest.NewDriver(rtx.ProfileNV)
	ctx := rtx.New(drv)
	require.NoError(t, ctx.Initialize())

	require.NoError(t, ctx.TraceRays(sampleParams))

	calls := drv.CallsTo("glTraceRaysNV")
	require.Len(t, calls, 1)
	assert.Equal(t, []uint32{
		1, 0, 32,
		2, 64, 32,
		3, 128, 48,
		4, 256, 16,
		1920, 1080, 1,
	}, calls[0].Args)
}

func TestTraceRaysRegion(t *testing.T) {
	drv := rtxtest.NewDriver(rtx.ProfileNV)
	ctx := rtx.New(drv)
	require.NoError(t, ctx.Initialize())

	require.NoError(t, ctx.TraceRaysRegion(rtx.SBTRegion{Buffer: 1, Offset: 0, Stride: 32}, 1920, 1080))

	calls := drv.CallsTo("glTraceRaysNV")
	require.Len(t, calls, 1)
	assert.Equal(t, []uint32{
		1, 0, 32,
		1, 0, 32,
		1, 0, 32,
		1, 0, 32,
		1920, 1080, 1,
	}, calls[0].Args)
}

func TestBindPipelineForwardsHandle(t *testing.T) {
	drv := rtxtest.NewDriver(rtx.ProfileNV)
	ctx := rtx.New(drv)
	require.NoError(t, ctx.Initialize())

	require.NoError(t, ctx.BindPipeline(0xdeadbeef))

	calls := drv.CallsTo("glBindRayTracingPipelineNV")
	require.Len(t, calls, 1)
	assert.Equal(t, []uint32{0xdeadbeef}, calls[0].Args)
}

func TestPreInitGuard(t *testing.T) {
	drv := rtxtest.NewDriver(rtx.ProfileNV)
	ctx := rtx.New(drv)

	assert.ErrorIs(t, ctx.BindPipeline(1), rtx.ErrNotInitialized)
	assert.ErrorIs(t, ctx.TraceRays(sampleParams), rtx.ErrNotInitialized)
	assert.ErrorIs(t, ctx.TraceRaysRegion(sampleParams.Raygen, 1, 1), rtx.ErrNotInitialized)
	assert.Empty(t, drv.Lookups)
	assert.Empty(t, drv.Calls)
}

func TestReset(t *testing.T) {
	drv := rtxtest.NewDriver(rtx.ProfileNV)
	ctx := rtx.New(drv)
	require.NoError(t, ctx.Initialize())

	ctx.Reset()

	assert.False(t, ctx.Initialized())
	assert.ErrorIs(t, ctx.BindPipeline(1), rtx.ErrNotInitialized)
	assert.Empty(t, drv.Calls)
}

func TestNilDriver(t *testing.T) {
	ctx := rtx.New(nil)
	assert.False(t, ctx.IsSupported())
	assert.ErrorIs(t, ctx.Initialize(), rtx.ErrUnsupported)
}

func TestInitializeLogsMissingProc(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	drv := rtxtest.NewDriver(rtx.ProfileNV)
	drv.Missing = []string{"glBindRayTracingPipelineNV"}
	ctx := rtx.New(drv, rtx.WithLogger(logger))

	require.Error(t, ctx.Initialize())
	assert.Contains(t, buf.String(), `"proc":"glBindRayTracingPipelineNV"`)
}
