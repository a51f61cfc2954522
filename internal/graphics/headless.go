package graphics

// HeadlessPresenter discards frames but keeps the most recent one,
// for the `-nogui` run mode and for tests that never open a window.
type HeadlessPresenter struct {
	last   FrameBuffer
	closed bool
}

// NewHeadlessPresenter creates a HeadlessPresenter.
func NewHeadlessPresenter() *HeadlessPresenter {
	return &HeadlessPresenter{}
}

// Present records frame as the most recently presented one.
func (p *HeadlessPresenter) Present(frame FrameBuffer) error {
	p.last = frame
	return nil
}

// ShouldClose reports false until Close has been called; headless
// runs are normally driven by a fixed frame count instead.
func (p *HeadlessPresenter) ShouldClose() bool {
	return p.closed
}

// Close marks the presenter closed.
func (p *HeadlessPresenter) Close() error {
	p.closed = true
	return nil
}

// LastFrame returns the most recently presented frame.
func (p *HeadlessPresenter) LastFrame() FrameBuffer {
	return p.last
}
