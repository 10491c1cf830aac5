package mscf

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseHeader_Valid(t *testing.T) {
	raw := []byte{
		'M', 'S', 'C', 'F', // Magic
		0x00, 0x01, // Version: 1
		0x00, 0x20, // Param start: 32
		0x00, 0x0B, // Pairs: 11
		0x12, 0x34, // Audio start: 0x1234
	}

	h, err := ParseHeader(raw)
	if err != nil {
		t.Fatalf("ParseHeader error: %v", err)
	}

	if h.Version != 1 {
		t.Errorf("Version = %d, want 1", h.Version)
	}
	if h.ParamStartOffset != 32 {
		t.Errorf("ParamStartOffset = %d, want 32", h.ParamStartOffset)
	}
	if h.NumPairs != 11 {
		t.Errorf("NumPairs = %d, want 11", h.NumPairs)
	}
	if h.AudioStartOffset != 0x1234 {
		t.Errorf("AudioStartOffset = 0x%04x, want 0x1234", h.AudioStartOffset)
	}
	if h.PhysicalEntryCount() != 22 {
		t.Errorf("PhysicalEntryCount = %d, want 22", h.PhysicalEntryCount())
	}
}

func TestParseHeader_BigEndian(t *testing.T) {
	// 0x0102 must decode as 258 regardless of host byte order
	raw := []byte{'M', 'S', 'C', 'F', 0x01, 0x02, 0x01, 0x02, 0x01, 0x02, 0x01, 0x02}

	h, err := ParseHeader(raw)
	if err != nil {
		t.Fatalf("ParseHeader error: %v", err)
	}

	if h.Version != 258 || h.ParamStartOffset != 258 || h.NumPairs != 258 || h.AudioStartOffset != 258 {
		t.Errorf("Header = %+v, want all fields 258", h)
	}
}

func TestParseHeader_BadMagic(t *testing.T) {
	raw := []byte{'M', 'S', 'C', 'X', 0, 1, 0, 12, 0, 1, 0, 0}

	_, err := ParseHeader(raw)

	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("ParseHeader error = %v, want *FormatError", err)
	}
	if string(fe.Magic[:]) != "MSCX" {
		t.Errorf("FormatError.Magic = %q, want %q", string(fe.Magic[:]), "MSCX")
	}
	if !strings.Contains(err.Error(), "MSCX") {
		t.Errorf("error %q should name the bytes found", err.Error())
	}
}

func TestParseHeader_BinaryMagic(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x1b, 'X', 0, 1, 0, 12, 0, 1, 0, 0}

	_, err := ParseHeader(raw)

	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("ParseHeader error = %v, want *FormatError", err)
	}
	if got := fe.Printable(); got != "...X" {
		t.Errorf("Printable() = %q, want %q", got, "...X")
	}

	want := "invalid file magic ...X (hex: 00011b58)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseHeader_VersionNotChecked(t *testing.T) {
	raw := []byte{'M', 'S', 'C', 'F', 0xFF, 0xFF, 0, 12, 0, 0, 0xFF, 0xFF}

	if _, err := ParseHeader(raw); err != nil {
		t.Errorf("ParseHeader should ignore version and audio start, got %v", err)
	}
}

func TestParseHeader_TooShort(t *testing.T) {
	_, err := ParseHeader([]byte{'M', 'S', 'C', 'F', 0, 1})
	if !errors.Is(err, ErrShortRead) {
		t.Errorf("ParseHeader error = %v, want ErrShortRead", err)
	}
}

func TestReadHeader_AdvancesCursor(t *testing.T) {
	raw := []byte{
		'M', 'S', 'C', 'F', 0x00, 0x01, 0x00, 0x0C, 0x00, 0x00, 0x00, 0x00,
		0xAA, 0xBB, // trailing bytes after the header
	}
	r := bytes.NewReader(raw)

	if _, err := ReadHeader(r); err != nil {
		t.Fatalf("ReadHeader error: %v", err)
	}

	if r.Len() != 2 {
		t.Errorf("remaining = %d, want 2", r.Len())
	}
}

func TestReadHeader_Truncated(t *testing.T) {
	r := bytes.NewReader([]byte{'M', 'S', 'C'})

	_, err := ReadHeader(r)
	if !errors.Is(err, ErrShortRead) {
		t.Errorf("ReadHeader error = %v, want ErrShortRead", err)
	}
}

func TestReadHeader_Empty(t *testing.T) {
	_, err := ReadHeader(bytes.NewReader(nil))
	if !errors.Is(err, ErrShortRead) {
		t.Errorf("ReadHeader error = %v, want ErrShortRead", err)
	}
}
