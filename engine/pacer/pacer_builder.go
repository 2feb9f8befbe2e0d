package pacer

// FramePacerOption is a functional option for configuring a FramePacer.
type FramePacerOption func(*framePacer)

// WithClock replaces the system clock, e.g. with a manual clock in tests.
//
// Parameters:
//   - clock: the time source
//
// Returns:
//   - FramePacerOption: functional option to set the clock
func WithClock(clock Clock) FramePacerOption {
	return func(p *framePacer) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// WithMaximumFps sets the initial frame rate limit.
//
// Parameters:
//   - fps: the maximum frame rate, 0 for unlimited
//
// Returns:
//   - FramePacerOption: functional option to set the limit
func WithMaximumFps(fps float32) FramePacerOption {
	return func(p *framePacer) {
		p.SetMaximumFps(fps)
	}
}
