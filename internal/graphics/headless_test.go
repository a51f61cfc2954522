package graphics

import "testing"

func TestHeadlessPresenterRecordsLastFrame(t *testing.T) {
	p := NewHeadlessPresenter()

	var frame FrameBuffer
	frame[0] = 0xFF0000
	if err := p.Present(frame); err != nil {
		t.Fatalf("Present returned error: %v", err)
	}

	if got := p.LastFrame(); got[0] != 0xFF0000 {
		t.Fatalf("LastFrame()[0] = 0x%06X, want 0xFF0000", got[0])
	}
}

func TestHeadlessPresenterClose(t *testing.T) {
	p := NewHeadlessPresenter()
	if p.ShouldClose() {
		t.Fatal("expected ShouldClose to be false before Close")
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if !p.ShouldClose() {
		t.Fatal("expected ShouldClose to be true after Close")
	}
}
