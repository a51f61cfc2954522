// Package console owns every other NES component for the lifetime of
// one emulation session: the cartridge, the bus (which in turn owns
// the CPU, PPU, APU, and input ports), and the presentation backend
// the completed framebuffer is handed to once per frame.
//
// Grounded on the orchestration responsibilities the teacher spread
// across internal/app/app.go and internal/app/emulator.go (both gone
// from this tree, see DESIGN.md) plus the bus's own frame-stepping
// loop; this package is the thin, un-instrumented replacement for
// both of them.
package console

import (
	"fmt"
	"log"

	"gones/internal/app"
	"gones/internal/bus"
	"gones/internal/cartridge"
	"gones/internal/graphics"
	"gones/internal/neserr"
)

// Console drives the master clock and forwards completed frames to
// the presentation collaborator. No component outlives the Console.
type Console struct {
	Bus    *bus.Bus
	Cart   *cartridge.Cartridge
	Config *app.Config

	presenter graphics.Presenter
	reporter  *neserr.Reporter
}

// New constructs a Console with its bus and presentation collaborator
// wired together, but with no cartridge loaded yet.
func New(cfg *app.Config) (*Console, error) {
	presenter, err := newPresenter(cfg)
	if err != nil {
		return nil, fmt.Errorf("create presenter: %w", err)
	}

	reporter := &neserr.Reporter{Logger: log.Printf}
	if cfg.Debug.EnableLogging {
		reporter.Mode = neserr.ModeDebug
	}

	console := &Console{
		Bus:       bus.New(),
		Config:    cfg,
		presenter: presenter,
		reporter:  reporter,
	}
	console.Bus.CPU.SetIllegalOpcodeReporter(reporter)
	console.Bus.Memory.SetROMWriteReporter(reporter)

	return console, nil
}

func newPresenter(cfg *app.Config) (graphics.Presenter, error) {
	if cfg.Video.Backend == "headless" {
		return graphics.NewHeadlessPresenter(), nil
	}

	width, height := cfg.GetWindowResolution()
	presenter, err := graphics.NewEbitenPresenter("nesgo", width, height, cfg.Video.VSync, cfg.Window.Fullscreen, cfg.Video.Filter)
	if err != nil {
		return graphics.NewHeadlessPresenter(), nil
	}
	return presenter, nil
}

// LoadROM parses path as an iNES image and attaches it to the bus,
// resetting the CPU so PC starts at the cartridge's reset vector.
func (c *Console) LoadROM(path string) error {
	cart, err := cartridge.LoadFromFile(path)
	if err != nil {
		return err
	}
	c.Cart = cart
	c.Bus.LoadCartridge(cart)

	// LoadCartridge rebuilds the CPU and bus memory around the new
	// cartridge, so the error reporters wired in New must be reattached.
	c.Bus.CPU.SetIllegalOpcodeReporter(c.reporter)
	c.Bus.Memory.SetROMWriteReporter(c.reporter)
	return nil
}

// Run presents frames until the presenter reports a close request.
// When the presenter drives its own loop (Ebitengine), Run blocks
// inside it; otherwise Console steps one frame at a time itself.
func (c *Console) Run() error {
	if runner, ok := c.presenter.(graphics.Runner); ok {
		return runner.Run(c.runOneFrame)
	}

	for !c.presenter.ShouldClose() {
		if err := c.runOneFrame(); err != nil {
			return err
		}
	}
	return nil
}

// RunFrames advances exactly n frames without consulting the
// presenter's close state, for headless automation and tests.
func (c *Console) RunFrames(n int) error {
	for i := 0; i < n; i++ {
		if err := c.runOneFrame(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) runOneFrame() error {
	c.Bus.Frame()
	return c.presenter.Present(c.Bus.PPU.GetFrameBuffer())
}

// Cleanup releases the presentation collaborator.
func (c *Console) Cleanup() error {
	if c.presenter != nil {
		return c.presenter.Close()
	}
	return nil
}

// FrameCount returns the number of frames the PPU has completed.
func (c *Console) FrameCount() uint64 {
	return c.Bus.GetFrameCount()
}
