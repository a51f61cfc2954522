//go:build !headless
// +build !headless

package graphics

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenPresenter displays frames in a window using Ebitengine.
// Ebitengine drives its own loop, so EbitenPresenter implements
// ebiten.Game directly rather than being polled from outside.
type EbitenPresenter struct {
	width, height int
	filterLinear  bool
	frame         *ebiten.Image
	closed        bool
	advance       func() error
}

// NewEbitenPresenter opens a window of the given size and returns a
// Presenter that draws NES frames into it, scaled to fit.
func NewEbitenPresenter(title string, width, height int, vsync, fullscreen bool, filter string) (*EbitenPresenter, error) {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(vsync)
	ebiten.SetFullscreen(fullscreen)

	return &EbitenPresenter{
		width:        width,
		height:       height,
		filterLinear: filter == "linear",
		frame:        ebiten.NewImage(256, 240),
	}, nil
}

// Present uploads frame to the window's backing image; it is drawn
// on the next call into Draw.
func (p *EbitenPresenter) Present(frame FrameBuffer) error {
	pix := make([]byte, 256*240*4)
	for i, px := range frame {
		pix[i*4+0] = uint8(px >> 16)
		pix[i*4+1] = uint8(px >> 8)
		pix[i*4+2] = uint8(px)
		pix[i*4+3] = 0xFF
	}
	p.frame.ReplacePixels(pix)
	return nil
}

// ShouldClose reports whether the window has requested a close.
func (p *EbitenPresenter) ShouldClose() bool {
	return p.closed
}

// Close marks the presenter closed; Ebitengine tears the window down
// when RunGame returns.
func (p *EbitenPresenter) Close() error {
	p.closed = true
	return nil
}

// Run hands control to Ebitengine's event loop, calling advance once
// per host tick until the window closes.
func (p *EbitenPresenter) Run(advance func() error) error {
	p.advance = advance
	ebiten.SetScreenFilterEnabled(p.filterLinear)
	return ebiten.RunGame(p)
}

// Update implements ebiten.Game. Escape requests a close; otherwise
// it advances the emulator by one frame.
func (p *EbitenPresenter) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		p.closed = true
		return ebiten.Termination
	}
	if p.advance != nil {
		return p.advance()
	}
	return nil
}

// Draw implements ebiten.Game, scaling the current frame to fill the
// window while preserving the NES's 256x240 aspect ratio.
func (p *EbitenPresenter) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	scaleX := float64(p.width) / 256
	scaleY := float64(p.height) / 240
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	offsetX := (float64(p.width) - 256*scale) / 2
	offsetY := (float64(p.height) - 240*scale) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(p.frame, op)
}

// Layout implements ebiten.Game, tracking the window's current size
// for the scale calculation in Draw.
func (p *EbitenPresenter) Layout(outsideWidth, outsideHeight int) (int, int) {
	p.width, p.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
