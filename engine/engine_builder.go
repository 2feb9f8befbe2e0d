package engine

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/config"
	"github.com/Carmen-Shannon/oxy-gl/engine/gfx"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/pacer"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithDevice attaches the graphics device at construction.
//
// Parameters:
//   - d: the device
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDevice(d gfx.Device) EngineBuilderOption {
	return func(e *engine) {
		e.device = d
	}
}

// WithCamera replaces the default camera. Pass nil to render without camera setup.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithMainRenderPass replaces the default ScreenPass. Pass nil to disable the main pass.
//
// Parameters:
//   - p: the main pass
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMainRenderPass(p RenderPass) EngineBuilderOption {
	return func(e *engine) {
		e.mainPass = p
	}
}

// WithPreRenderPass sets the pass run before the camera setup.
//
// Parameters:
//   - p: the pre-pass
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPreRenderPass(p RenderPass) EngineBuilderOption {
	return func(e *engine) {
		e.prePass = p
	}
}

// WithScene sets the scene root.
func WithScene(n Node) EngineBuilderOption {
	return func(e *engine) {
		e.scene = n
	}
}

// WithLights seeds the light list.
func WithLights(lights ...light.Light) EngineBuilderOption {
	return func(e *engine) {
		e.lights = append(e.lights, lights...)
	}
}

// WithFrameListener registers a lifecycle listener.
func WithFrameListener(l FrameListener) EngineBuilderOption {
	return func(e *engine) {
		e.listeners = append(e.listeners, l)
	}
}

// WithResourceManager registers a context resource manager.
func WithResourceManager(m ResourceManager) EngineBuilderOption {
	return func(e *engine) {
		e.managers = append(e.managers, m)
	}
}

// WithMaximumFps sets the initial frame rate limit.
//
// Parameters:
//   - fps: maximum frames per second (0 = unlimited)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithMaximumFps(fps float32) EngineBuilderOption {
	return func(e *engine) {
		e.pacerOptions = append(e.pacerOptions, pacer.WithMaximumFps(fps))
	}
}

// WithClock replaces the pacing clock.
func WithClock(c pacer.Clock) EngineBuilderOption {
	return func(e *engine) {
		e.pacerOptions = append(e.pacerOptions, pacer.WithClock(c))
	}
}

// WithClearColor sets the color applied on every new context.
func WithClearColor(r, g, b, a float32) EngineBuilderOption {
	return func(e *engine) {
		e.clearColor = [4]float32{r, g, b, a}
	}
}

// WithDepthTest toggles depth testing on every new context.
func WithDepthTest(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.depthTest = enabled
	}
}

// WithCullFace toggles back-face culling on every new context.
func WithCullFace(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.cullFace = enabled
	}
}

// WithAutoAspect makes surface size changes update the active camera's aspect ratio.
//
// Parameters:
//   - enabled: if true, OnSurfaceChanged forwards width / height to the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithAutoAspect(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.autoAspect = enabled
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithConfig applies a loaded configuration: frame rate limit, global GL state, auto aspect,
// profiling and a camera built from the camera section. Options after it override it.
//
// Parameters:
//   - cfg: the configuration
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfig(cfg config.Config) EngineBuilderOption {
	return func(e *engine) {
		WithMaximumFps(float32(cfg.MaxFps))(e)
		c := cfg.ClearColor
		WithClearColor(c[0], c[1], c[2], c[3])(e)
		e.depthTest = cfg.DepthTest
		e.cullFace = cfg.CullFace
		e.autoAspect = cfg.AutoAspect
		e.profilingEnabled = cfg.Profiling

		aspect := float32(1)
		if cfg.Window.Height > 0 {
			aspect = float32(cfg.Window.Width) / float32(cfg.Window.Height)
		}
		e.camera = camera.NewCamera(camera.WithAspect(aspect), camera.WithConfig(cfg.Camera))
	}
}
