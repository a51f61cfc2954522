//go:build headless
// +build headless

package graphics

import "fmt"

// EbitenPresenter is unavailable in headless builds (no display
// server / cgo dependency); NewEbitenPresenter always fails so
// callers fall back to HeadlessPresenter.
type EbitenPresenter struct{}

func NewEbitenPresenter(title string, width, height int, vsync, fullscreen bool, filter string) (*EbitenPresenter, error) {
	return nil, fmt.Errorf("ebitengine backend not available in headless build")
}

func (p *EbitenPresenter) Present(frame FrameBuffer) error {
	return fmt.Errorf("ebitengine backend not available in headless build")
}

func (p *EbitenPresenter) ShouldClose() bool {
	return true
}

func (p *EbitenPresenter) Close() error {
	return nil
}
