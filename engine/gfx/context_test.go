package gfx_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/gfx"
	"github.com/Carmen-Shannon/oxy-gl/engine/gfx/gfxtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextLifecycle(t *testing.T) {
	ctx := gfx.NewContext()
	assert.Equal(t, gfx.ContextUninitialized, ctx.State())
	assert.ErrorIs(t, ctx.MarkReady(), gfx.ErrInvalidTransition)

	gen := ctx.Create(gfx.ContextDescriptor{Major: 2, Minor: 1, Width: 640, Height: 480})
	assert.Equal(t, uint64(1), gen)
	assert.Equal(t, gfx.ContextCreated, ctx.State())
	assert.Equal(t, 640, ctx.Descriptor().Width)

	require.NoError(t, ctx.MarkReady())
	require.NoError(t, ctx.MarkReady())
	assert.Equal(t, gfx.ContextReady, ctx.State())

	// recreation re-enters Created from Ready
	assert.Equal(t, uint64(2), ctx.Create(gfx.ContextDescriptor{}))
	assert.Equal(t, gfx.ContextCreated, ctx.State())

	ctx.Lose()
	assert.Equal(t, gfx.ContextUninitialized, ctx.State())
	assert.Equal(t, "uninitialized", ctx.State().String())
}

func TestUploadBufferStampsGeneration(t *testing.T) {
	dev := gfxtest.NewRecorder()
	ctx := gfx.NewContext()

	_, err := gfx.UploadBuffer(dev, ctx, []float32{1}, gfx.StaticDraw)
	assert.ErrorIs(t, err, gfx.ErrContextNotReady)

	ctx.Create(gfx.ContextDescriptor{})
	h, err := gfx.UploadBuffer(dev, ctx, []float32{1, 2.5}, gfx.StaticDraw)
	require.NoError(t, err)
	assert.True(t, ctx.Valid(h))
	assert.Equal(t, uint32(0), dev.Bound[gfx.ArrayBuffer])

	data := dev.Buffers[h.ID]
	require.Len(t, data, 8)
	assert.Equal(t, float32(2.5), math.Float32frombits(binary.LittleEndian.Uint32(data[4:])))

	ctx.Create(gfx.ContextDescriptor{})
	assert.False(t, ctx.Valid(h))
	assert.False(t, gfx.DeleteBuffer(dev, ctx, h))
	assert.Empty(t, dev.Deleted)

	fresh, err := gfx.UploadBuffer(dev, ctx, []float32{3}, gfx.StaticDraw)
	require.NoError(t, err)
	assert.True(t, gfx.DeleteBuffer(dev, ctx, fresh))
	assert.Equal(t, []uint32{fresh.ID}, dev.Deleted)
}

func TestDataTypeSize(t *testing.T) {
	assert.Equal(t, 4, gfx.Float.Size())
	assert.Equal(t, 2, gfx.UnsignedShort.Size())
	assert.Equal(t, 1, gfx.Byte.Size())
	assert.Equal(t, 0, gfx.DataType(0).Size())
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "invalid operation", gfx.InvalidOperation.String())
	assert.Equal(t, "unknown error 0x1234", gfx.ErrorCode(0x1234).String())
}
