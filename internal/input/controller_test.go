package input

import "testing"

func TestReadReturnsOpenBus(t *testing.T) {
	p := New()
	if got := p.Read(0x4016); got != 0 {
		t.Fatalf("Read($4016) = 0x%02X, want open-bus 0", got)
	}
	if got := p.Read(0x4017); got != 0 {
		t.Fatalf("Read($4017) = 0x%02X, want open-bus 0", got)
	}
}

func TestWriteAndResetAreNoOps(t *testing.T) {
	p := New()
	p.Write(0x4016, 0x01)
	p.Reset()

	if got := p.Read(0x4016); got != 0 {
		t.Fatalf("Read($4016) after write/reset = 0x%02X, want 0", got)
	}
}
