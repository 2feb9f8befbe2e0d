package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/config"
	"github.com/Carmen-Shannon/oxy-gl/engine/gfx"
	"github.com/stretchr/testify/assert"
)

func TestBuilderOptions(t *testing.T) {
	w := &engineWindow{}
	for _, opt := range []WindowBuilderOption{
		WithConfig(config.WindowConfig{Title: "demo", Width: 800, Height: 600, VSync: true}),
		WithSizeLimits(100, 100, 1000, 1000),
		WithTitle("picking"),
	} {
		opt(w)
	}

	assert.Equal(t, "picking", w.title)
	assert.Equal(t, 800, w.Width())
	assert.Equal(t, 600, w.Height())
	assert.True(t, w.vsync)
	assert.Equal(t, 1000, w.maxWidth)
}

func TestUncreatedWindow(t *testing.T) {
	w := &engineWindow{width: 10, height: 20}

	assert.False(t, w.IsRunning())
	assert.False(t, w.PollEvents())
	assert.Error(t, w.Close())
	assert.Equal(t, gfx.ContextDescriptor{}, w.ContextDescriptor())
	assert.NotPanics(t, w.SwapBuffers)

	fw, fh := w.FramebufferSize()
	assert.Equal(t, 10, fw)
	assert.Equal(t, 20, fh)
}
