// Package graphics defines the presentation collaborator a Console
// hands completed frames to. The windowing/blit layer itself, and
// any controller input polling that would otherwise live alongside
// it, are explicitly out of scope for this emulator's core; this
// package specifies the minimal interface such a collaborator must
// satisfy (the framebuffer-out contract) and carries one thin
// Ebitengine-backed implementation plus a headless stand-in for
// automated runs and tests.
package graphics

// FrameBuffer is one completed NES frame: 256x240 pixels in
// row-major order, packed as 0x00RRGGBB, matching the PPU's
// GetFrameBuffer output.
type FrameBuffer = [256 * 240]uint32

// Presenter is handed one completed frame per call and reports
// whether the host loop should stop driving the emulator.
type Presenter interface {
	Present(frame FrameBuffer) error
	ShouldClose() bool
	Close() error
}

// Runner is satisfied by presenters that must drive their own event
// loop (Ebitengine) rather than being stepped frame-by-frame from
// outside. advance runs one emulated frame and is called once per
// host tick.
type Runner interface {
	Presenter
	Run(advance func() error) error
}
