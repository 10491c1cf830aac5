package mscf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ParamSize is the size of the DSP parameter block each entry points to.
const ParamSize = 0x60

// Entry describes one mono channel.
type Entry struct {
	FieldLength uint16 // unused
	Unknown     uint16 // unused
	AudioOffset uint32 // absolute offset of the audio payload
	ParamOffset uint32 // absolute offset of the ParamSize-byte parameter block
	AudioLength uint32 // payload length in bytes
}

// ParseEntries decodes count consecutive entry records.
// This is a pure function: bytes → entries.
//
// Offsets are not checked against anything; out-of-range values surface
// when the regions are read.
func ParseEntries(raw []byte, count int) ([]Entry, error) {
	if count < 0 {
		return nil, fmt.Errorf("entry count %d is negative", count)
	}
	need := count * EntrySize
	if len(raw) < need {
		return nil, fmt.Errorf("entry table: %w: need %d bytes, have %d", ErrShortRead, need, len(raw))
	}

	entries := make([]Entry, count)
	for i := range entries {
		// Record format:
		// Bytes 0-1:   field length
		// Bytes 2-3:   unknown
		// Bytes 4-7:   audio offset
		// Bytes 8-11:  DSP param offset
		// Bytes 12-15: audio length
		rec := raw[i*EntrySize : (i+1)*EntrySize]
		entries[i] = Entry{
			FieldLength: binary.BigEndian.Uint16(rec[0:2]),
			Unknown:     binary.BigEndian.Uint16(rec[2:4]),
			AudioOffset: binary.BigEndian.Uint32(rec[4:8]),
			ParamOffset: binary.BigEndian.Uint32(rec[8:12]),
			AudioLength: binary.BigEndian.Uint32(rec[12:16]),
		}
	}

	return entries, nil
}

// ReadEntries seeks r to the absolute offset and reads count records.
func ReadEntries(r io.ReadSeeker, offset int64, count int) ([]Entry, error) {
	if count < 0 {
		return nil, fmt.Errorf("entry count %d is negative", count)
	}
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek entry table: %w", err)
	}

	raw := make([]byte, count*EntrySize)
	if err := readFull(r, raw); err != nil {
		return nil, fmt.Errorf("read entry table at 0x%x: %w", offset, err)
	}

	return ParseEntries(raw, count)
}
