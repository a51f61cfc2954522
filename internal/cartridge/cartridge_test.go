package cartridge

import (
	"bytes"
	"testing"

	"gones/internal/neserr"
)

func buildINES(prgBanks, chrBanks int, flags6, flags7 uint8) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("NES\x1A")
	buf.WriteByte(uint8(prgBanks))
	buf.WriteByte(uint8(chrBanks))
	buf.WriteByte(flags6)
	buf.WriteByte(flags7)
	buf.Write(make([]byte, 8)) // PRGRAMSize, TVSystem1/2, padding
	buf.Write(make([]byte, prgBanks*16384))
	if chrBanks > 0 {
		buf.Write(make([]byte, chrBanks*8192))
	}
	return buf.Bytes()
}

func TestLoadFromReaderRejectsBadMagic(t *testing.T) {
	data := buildINES(1, 1, 0, 0)
	data[0] = 'X'
	_, err := LoadFromReader(bytes.NewReader(data))
	if err == nil {
		t.Fatal("expected error for bad magic")
	}
	nesErr, ok := err.(*neserr.Error)
	if !ok || nesErr.Kind != neserr.CartridgeBadMagic {
		t.Fatalf("expected CartridgeBadMagic, got %v", err)
	}
}

func TestLoadFromReaderRejectsUnsupportedMapper(t *testing.T) {
	// mapper 1 (MMC1): flags6 high nibble = 1
	data := buildINES(1, 1, 0x10, 0)
	_, err := LoadFromReader(bytes.NewReader(data))
	if err == nil {
		t.Fatal("expected error for unsupported mapper")
	}
	nesErr, ok := err.(*neserr.Error)
	if !ok || nesErr.Kind != neserr.CartridgeUnsupportedMapper {
		t.Fatalf("expected CartridgeUnsupportedMapper, got %v", err)
	}
}

func TestLoadFromReaderNROM16KBMirrors(t *testing.T) {
	data := buildINES(1, 1, 0, 0)
	// mark a byte in the 16KB PRG bank so we can detect mirroring
	data[16] = 0x42
	cart, err := LoadFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cart.ReadPRG(0x8000); got != 0x42 {
		t.Fatalf("ReadPRG(0x8000) = %02X, want 42", got)
	}
	if got := cart.ReadPRG(0xC000); got != 0x42 {
		t.Fatalf("ReadPRG(0xC000) = %02X, want 42 (16KB mirror)", got)
	}
}

func TestLoadFromReaderCHRRAMWhenAllZero(t *testing.T) {
	data := buildINES(1, 1, 0, 0)
	cart, err := LoadFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cart.hasCHRRAM {
		t.Fatal("expected all-zero CHR ROM to be detected as CHR RAM")
	}
	cart.WriteCHR(0x0000, 0x99)
	if got := cart.ReadCHR(0x0000); got != 0x99 {
		t.Fatalf("CHR RAM write/read = %02X, want 99", got)
	}
}

func TestLoadFromReaderMirroringModes(t *testing.T) {
	vertical := buildINES(1, 1, 0x01, 0)
	cart, err := LoadFromReader(bytes.NewReader(vertical))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.GetMirrorMode() != MirrorVertical {
		t.Fatalf("expected MirrorVertical, got %v", cart.GetMirrorMode())
	}

	fourScreen := buildINES(1, 1, 0x08, 0)
	cart, err = LoadFromReader(bytes.NewReader(fourScreen))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.GetMirrorMode() != MirrorFourScreen {
		t.Fatalf("expected MirrorFourScreen, got %v", cart.GetMirrorMode())
	}
}

func TestSRAMPersistsAcrossReadWrite(t *testing.T) {
	data := buildINES(1, 1, 0, 0)
	cart, err := LoadFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart.WritePRG(0x6000, 0xAB)
	if got := cart.ReadPRG(0x6000); got != 0xAB {
		t.Fatalf("SRAM read = %02X, want AB", got)
	}
}
