// Package mscf decodes the MSCF sound bank container.
//
// Layout (all integers big-endian):
//
//	0                 header (HeaderSize bytes)
//	paramStartOffset  pointer table, 4 bytes per entry (skipped)
//	                  parameter descriptor table, 8 bytes per pair (skipped)
//	entryTableOffset  entry table, EntrySize bytes per entry
//
// Each entry is one mono channel; entries 2k and 2k+1 form stereo pair k.
package mscf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MSCF container constants
const (
	Magic      = "MSCF"
	HeaderSize = 12
)

// ErrShortRead is wrapped by every error caused by the input ending early.
var ErrShortRead = errors.New("short read")

// Header is the fixed-size archive header.
type Header struct {
	Magic            [4]byte
	Version          uint16 // unused
	ParamStartOffset uint16 // start of the pointer table
	NumPairs         uint16 // stereo pairs; the entry table holds twice as many records
	AudioStartOffset uint16 // unused
}

// PhysicalEntryCount returns the number of entry records, one per channel.
func (h Header) PhysicalEntryCount() int {
	return int(h.NumPairs) * 2
}

// FormatError reports a header whose magic is not "MSCF".
type FormatError struct {
	Magic [4]byte
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid file magic %s (hex: %x)", e.Printable(), e.Magic[:])
}

// Printable returns the magic with bytes outside printable ASCII shown as '.'.
func (e *FormatError) Printable() string {
	b := make([]byte, len(e.Magic))
	for i, c := range e.Magic {
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		b[i] = c
	}
	return string(b)
}

// ParseHeader decodes a header from raw bytes.
// This is a pure function: bytes → (Header, error)
//
// Only the magic is validated; version and audio start are passed through.
func ParseHeader(raw []byte) (Header, error) {
	if len(raw) < HeaderSize {
		return Header{}, fmt.Errorf("header: %w: need %d bytes, have %d", ErrShortRead, HeaderSize, len(raw))
	}

	var h Header
	copy(h.Magic[:], raw[0:4])
	if string(h.Magic[:]) != Magic {
		return Header{}, &FormatError{Magic: h.Magic}
	}

	h.Version = binary.BigEndian.Uint16(raw[4:6])
	h.ParamStartOffset = binary.BigEndian.Uint16(raw[6:8])
	h.NumPairs = binary.BigEndian.Uint16(raw[8:10])
	h.AudioStartOffset = binary.BigEndian.Uint16(raw[10:12])

	return h, nil
}

// ReadHeader reads and decodes the header at the current position of r,
// leaving r positioned just past it.
func ReadHeader(r io.Reader) (Header, error) {
	raw := make([]byte, HeaderSize)
	if err := readFull(r, raw); err != nil {
		return Header{}, fmt.Errorf("read header: %w", err)
	}
	return ParseHeader(raw)
}

// readFull fills buf from r, mapping a premature end of input to ErrShortRead.
func readFull(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: got %d of %d bytes", ErrShortRead, n, len(buf))
	}
	return err
}
