package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/gfx"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/pacer"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/state"
)

// ErrNoDevice is returned when a context is reported before a device was attached.
var ErrNoDevice = errors.New("no graphics device")

// engine implements the Engine interface.
// Everything runs on the goroutine that owns the GL context.
type engine struct {
	device  gfx.Device
	context *gfx.Context
	state   state.RenderState

	camera camera.Camera
	lights []light.Light
	scene  Node

	prePass  RenderPass
	mainPass RenderPass

	listeners []FrameListener
	managers  []ResourceManager

	pacerOptions []pacer.FramePacerOption
	pacer        pacer.FramePacer

	clearColor [4]float32
	depthTest  bool
	cullFace   bool
	autoAspect bool

	profiler         *profiler.Profiler
	profilingEnabled bool
}

// Engine orchestrates frames: it paces them, resets the shared render state, runs the pre-pass,
// sets up the camera and runs the main pass, then checks the device for errors.
// It also tracks the GL context lifecycle reported by the host.
type Engine interface {
	// State returns the shared render state.
	//
	// Returns:
	//   - state.RenderState: the state passes read from
	State() state.RenderState

	// Context returns the GL context tracker.
	//
	// Returns:
	//   - *gfx.Context: the lifecycle state machine
	Context() *gfx.Context

	// Device returns the graphics device.
	//
	// Returns:
	//   - gfx.Device: the device, nil until one is attached
	Device() gfx.Device

	// SetDevice attaches the graphics device. The host does this once its context is current.
	//
	// Parameters:
	//   - d: the device
	SetDevice(d gfx.Device)

	// Camera returns the active camera, or nil.
	Camera() camera.Camera

	// SetCamera replaces the active camera. A nil camera skips the camera setup step.
	//
	// Parameters:
	//   - c: the new camera
	SetCamera(c camera.Camera)

	// AddLight appends a light to the light list.
	//
	// Parameters:
	//   - l: the light to add
	AddLight(l light.Light)

	// RemoveLight removes the first occurrence of a light.
	//
	// Parameters:
	//   - l: the light to remove
	//
	// Returns:
	//   - bool: true if the light was in the list
	RemoveLight(l light.Light) bool

	// Lights returns a copy of the light list.
	//
	// Returns:
	//   - []light.Light: the lights in insertion order
	Lights() []light.Light

	// Scene returns the scene root, or nil.
	Scene() Node

	// SetScene sets the scene root drawn by the main pass.
	//
	// Parameters:
	//   - n: the new root
	SetScene(n Node)

	// PreRenderPass returns the pass run before the camera setup, or nil.
	PreRenderPass() RenderPass

	// SetPreRenderPass sets the pass run before the camera setup (shadow maps, offscreen targets).
	//
	// Parameters:
	//   - p: the pass, nil to disable
	SetPreRenderPass(p RenderPass)

	// MainRenderPass returns the main pass, or nil.
	MainRenderPass() RenderPass

	// SetMainRenderPass sets the main pass. With no main pass the camera is not set up either.
	//
	// Parameters:
	//   - p: the pass, nil to disable
	SetMainRenderPass(p RenderPass)

	// AddFrameListener registers a lifecycle listener. Listeners are called in registration order.
	//
	// Parameters:
	//   - l: the listener
	AddFrameListener(l FrameListener)

	// AddResourceManager registers a manager notified of every new context generation.
	//
	// Parameters:
	//   - m: the manager
	AddResourceManager(m ResourceManager)

	// SetMaximumFps limits the frame rate. 0 disables the limit.
	//
	// Parameters:
	//   - fps: the maximum frame rate
	SetMaximumFps(fps float32)

	// MaximumFps returns the effective frame rate limit, or 0 when unlimited.
	MaximumFps() float32

	// Fps returns the smoothed frame rate.
	Fps() float32

	// EnableProfiler enables periodic performance logging.
	EnableProfiler()

	// DisableProfiler disables periodic performance logging.
	DisableProfiler()

	// OnContextCreated is called by the host whenever a GL context was (re)created and made current.
	// It starts a new context generation, notifies resource managers, applies global GL state,
	// marks the context ready and notifies listeners to load the scene.
	//
	// Parameters:
	//   - desc: the context reported by the host
	//
	// Returns:
	//   - error: ErrNoDevice if no device is attached
	OnContextCreated(desc gfx.ContextDescriptor) error

	// OnContextLost is called by the host when its context was destroyed.
	OnContextLost()

	// OnSurfaceChanged is called by the host when the framebuffer size changed.
	//
	// Parameters:
	//   - width, height: framebuffer size in pixels
	OnSurfaceChanged(width, height int)

	// RenderFrame renders one frame.
	//
	// Parameters:
	//   - ctx: cuts the frame pacing wait short, the frame is rendered either way
	//
	// Returns:
	//   - error: gfx.ErrContextNotReady before OnContextCreated
	RenderFrame(ctx context.Context) error

	// Run drives the engine from a host until the host stops or ctx is done.
	//
	// Parameters:
	//   - ctx: stops the loop
	//   - host: the window or surface owning the GL context
	//
	// Returns:
	//   - error: error if the context could not be set up
	Run(ctx context.Context, host Host) error
}

var _ Engine = &engine{}

// NewEngine creates an Engine with a default camera, the ScreenPass as main pass, an unlimited
// frame rate, black clear color, depth test and face culling enabled.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		context:    gfx.NewContext(),
		camera:     camera.NewCamera(),
		mainPass:   &ScreenPass{},
		clearColor: [4]float32{0, 0, 0, 1},
		depthTest:  true,
		cullFace:   true,
		profiler:   profiler.NewProfiler(0),
	}

	for _, opt := range options {
		opt(e)
	}

	e.state = state.NewRenderState(e.device)
	e.pacer = pacer.NewFramePacer(e.pacerOptions...)
	return e
}

func (e *engine) State() state.RenderState {
	return e.state
}

func (e *engine) Context() *gfx.Context {
	return e.context
}

func (e *engine) Device() gfx.Device {
	return e.device
}

func (e *engine) SetDevice(d gfx.Device) {
	e.device = d
	e.state.SetDevice(d)
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) SetCamera(c camera.Camera) {
	e.camera = c
}

func (e *engine) AddLight(l light.Light) {
	e.lights = append(e.lights, l)
}

func (e *engine) RemoveLight(l light.Light) bool {
	i := slices.Index(e.lights, l)
	if i < 0 {
		return false
	}
	e.lights = slices.Delete(e.lights, i, i+1)
	return true
}

func (e *engine) Lights() []light.Light {
	return slices.Clone(e.lights)
}

func (e *engine) Scene() Node {
	return e.scene
}

func (e *engine) SetScene(n Node) {
	e.scene = n
}

func (e *engine) PreRenderPass() RenderPass {
	return e.prePass
}

func (e *engine) SetPreRenderPass(p RenderPass) {
	e.prePass = p
}

func (e *engine) MainRenderPass() RenderPass {
	return e.mainPass
}

func (e *engine) SetMainRenderPass(p RenderPass) {
	e.mainPass = p
}

func (e *engine) AddFrameListener(l FrameListener) {
	e.listeners = append(e.listeners, l)
}

func (e *engine) AddResourceManager(m ResourceManager) {
	e.managers = append(e.managers, m)
}

func (e *engine) SetMaximumFps(fps float32) {
	e.pacer.SetMaximumFps(fps)
}

func (e *engine) MaximumFps() float32 {
	return e.pacer.MaximumFps()
}

func (e *engine) Fps() float32 {
	return e.pacer.Fps()
}

// EnableProfiler enables periodic performance logging.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables periodic performance logging.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) OnContextCreated(desc gfx.ContextDescriptor) error {
	if e.device == nil {
		return fmt.Errorf("context created: %w", ErrNoDevice)
	}

	gen := e.context.Create(desc)
	log.Printf("[Engine] GL %d.%d context created (generation %d)", desc.Major, desc.Minor, gen)

	for _, m := range e.managers {
		m.OnContextRecreated(e.context)
	}

	c := e.clearColor
	e.device.ClearColor(c[0], c[1], c[2], c[3])
	e.setCapability(gfx.DepthTest, e.depthTest)
	e.setCapability(gfx.CullFace, e.cullFace)

	if err := e.context.MarkReady(); err != nil {
		return fmt.Errorf("context created: %w", err)
	}

	for _, l := range e.listeners {
		l.OnLoadScene(e)
	}
	return nil
}

func (e *engine) OnContextLost() {
	e.context.Lose()
	log.Printf("[Engine] GL context lost (generation %d)", e.context.Generation())
}

func (e *engine) OnSurfaceChanged(width, height int) {
	e.state.SetViewport(0, 0, int32(width), int32(height))
	if e.autoAspect && e.camera != nil && height > 0 {
		e.camera.SetAspect(float32(width) / float32(height))
	}
}

func (e *engine) RenderFrame(ctx context.Context) error {
	if e.context.State() != gfx.ContextReady {
		return fmt.Errorf("render frame: %w", gfx.ErrContextNotReady)
	}

	// an interrupted wait only shortens the frame, the frame itself still runs
	if err := e.pacer.Pace(ctx); err != nil {
		log.Printf("[Engine] frame pacing interrupted: %v", err)
	}

	e.state.Reset()

	for _, l := range e.listeners {
		l.OnRenderFrameStart(e)
	}

	if e.prePass != nil {
		e.prePass.Render(e)
	}

	if e.mainPass != nil {
		if e.camera != nil {
			e.camera.Setup(e.state)
		}
		for _, l := range e.listeners {
			l.OnRenderMainPassStart(e)
		}
		e.mainPass.Render(e)
	}

	code := e.device.Error()
	if code != gfx.NoError {
		log.Printf("[Engine] glError %d: %s", uint32(code), code)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(profiler.FrameStats{SmoothedFps: e.pacer.Fps(), GLError: code != gfx.NoError})
	}
	return nil
}

// setCapability enables or disables a GL capability.
func (e *engine) setCapability(c gfx.Capability, on bool) {
	if on {
		e.device.Enable(c)
	} else {
		e.device.Disable(c)
	}
}
