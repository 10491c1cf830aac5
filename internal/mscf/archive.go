package mscf

import (
	"fmt"
	"io"
)

// Archive is a decoded header and entry table together with the source
// they were read from.
type Archive struct {
	Header  Header
	Entries []Entry
	Size    int64 // total input size in bytes

	r io.ReadSeeker
}

// Open decodes the header and entry table of r.
// r is read from its start; the pointer and descriptor tables are skipped.
func Open(r io.ReadSeeker) (*Archive, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("seek end: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek start: %w", err)
	}

	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	entries, err := ReadEntries(r, EntryTableOffset(h), h.PhysicalEntryCount())
	if err != nil {
		return nil, err
	}

	return &Archive{Header: h, Entries: entries, Size: size, r: r}, nil
}

// ReadRegion reads length bytes at the absolute offset.
//
// The region is checked against the input size before any buffer is
// allocated, so a corrupt length fails as ErrShortRead instead of
// requesting gigabytes of memory.
func (a *Archive) ReadRegion(offset int64, length int64) ([]byte, error) {
	if offset < 0 || length < 0 || offset > a.Size || length > a.Size-offset {
		return nil, fmt.Errorf("%w: region 0x%x+%d exceeds input size %d", ErrShortRead, offset, length, a.Size)
	}
	if _, err := a.r.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek 0x%x: %w", offset, err)
	}

	buf := make([]byte, length)
	if err := readFull(a.r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Param reads the DSP parameter block of entry i.
func (a *Archive) Param(i int) ([]byte, error) {
	e, err := a.entry(i)
	if err != nil {
		return nil, err
	}
	buf, err := a.ReadRegion(int64(e.ParamOffset), ParamSize)
	if err != nil {
		return nil, fmt.Errorf("read entry %d params: %w", i, err)
	}
	return buf, nil
}

// Audio reads the audio payload of entry i.
func (a *Archive) Audio(i int) ([]byte, error) {
	e, err := a.entry(i)
	if err != nil {
		return nil, err
	}
	buf, err := a.ReadRegion(int64(e.AudioOffset), int64(e.AudioLength))
	if err != nil {
		return nil, fmt.Errorf("read entry %d audio: %w", i, err)
	}
	return buf, nil
}

func (a *Archive) entry(i int) (Entry, error) {
	if i < 0 || i >= len(a.Entries) {
		return Entry{}, fmt.Errorf("entry %d out of range (%d entries)", i, len(a.Entries))
	}
	return a.Entries[i], nil
}
