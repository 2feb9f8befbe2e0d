package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientBufferCursor(t *testing.T) {
	b := NewFloatBuffer([]float32{1, 2, 3})
	assert.Equal(t, 12, b.Len())
	assert.NoError(t, b.SetPosition(12))
	assert.Error(t, b.SetPosition(13))
	assert.Error(t, b.SetPosition(-1))
	assert.Equal(t, 12, b.Position(), "failed moves leave the cursor alone")

	assert.Nil(t, NewClientBuffer(nil).Pointer())
}

func TestClientBufferPointerAtEnd(t *testing.T) {
	b := NewFloatBuffer([]float32{1, 2, 3})
	require.NoError(t, b.SetPosition(8))
	assert.NotNil(t, b.Pointer())

	require.NoError(t, b.SetPosition(12))
	assert.Nil(t, b.Pointer(), "no address past the last byte")
}

func TestClientBufferPin(t *testing.T) {
	b := NewFloatBuffer([]float32{1, 2, 3})
	b.Pin()
	b.Pin()
	assert.True(t, b.Pinned())
	b.Unpin()
	assert.False(t, b.Pinned())

	empty := NewClientBuffer(nil)
	empty.Pin()
	assert.False(t, empty.Pinned())
}
