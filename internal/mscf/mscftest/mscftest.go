// Package mscftest builds synthetic MSCF archives for tests.
package mscftest

import (
	"encoding/binary"
)

const (
	headerSize = 12
	paramSize  = 0x60
	entrySize  = 16
)

// Channel is one mono stream. Param is zero-padded or cut to 96 bytes.
type Channel struct {
	Param []byte
	Audio []byte
}

// Archive describes a synthetic archive. Channels are stored in pairs, so an
// odd trailing channel is dropped.
type Archive struct {
	Magic      string // default "MSCF"
	Version    uint16
	ParamStart uint16 // default 0x10; must be >= 12
	Channels   []Channel
}

// Pair returns two channels with the given payloads and distinct parameter
// blocks derived from seed.
func Pair(seed byte, left, right []byte) []Channel {
	return []Channel{
		{Param: Fill(paramSize, seed), Audio: left},
		{Param: Fill(paramSize, seed+0x80), Audio: right},
	}
}

// Fill returns n bytes counting up from start.
func Fill(n int, start byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}

// ParamBlock returns the 96-byte parameter block stored for c.
func (c Channel) ParamBlock() []byte {
	p := make([]byte, paramSize)
	copy(p, c.Param)
	return p
}

// Want returns the expected extracted asset for c.
func (c Channel) Want() []byte {
	return append(c.ParamBlock(), c.Audio...)
}

// EntryTableOffset returns where Bytes places the entry table.
func (a Archive) EntryTableOffset() int {
	return int(a.paramStart()) + a.pairs()*16
}

// Bytes lays the archive out as header, pointer table, descriptor table,
// entry table, then each channel's parameter block followed by its audio.
// Audio is stored in reverse channel order so that no entry's regions are
// adjacent to its own parameter block.
func (a Archive) Bytes() []byte {
	pairs := a.pairs()
	n := pairs * 2
	dataStart := a.EntryTableOffset() + n*entrySize

	paramOff := make([]int, n)
	audioOff := make([]int, n)
	pos := dataStart
	for i := 0; i < n; i++ {
		paramOff[i] = pos
		pos += paramSize
	}
	for i := n - 1; i >= 0; i-- {
		audioOff[i] = pos
		pos += len(a.Channels[i].Audio)
	}

	out := make([]byte, pos)

	magic := a.Magic
	if magic == "" {
		magic = "MSCF"
	}
	copy(out[0:4], magic)
	binary.BigEndian.PutUint16(out[4:6], a.Version)
	binary.BigEndian.PutUint16(out[6:8], a.paramStart())
	binary.BigEndian.PutUint16(out[8:10], uint16(pairs))
	binary.BigEndian.PutUint16(out[10:12], uint16(dataStart))

	// Pointer table, then descriptor table. Contents are plausible but
	// readers never look at them.
	off := int(a.paramStart())
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(out[off:off+4], uint32(paramOff[i]))
		off += 4
	}
	for i := 0; i < pairs; i++ {
		binary.BigEndian.PutUint16(out[off:off+2], 8)
		binary.BigEndian.PutUint16(out[off+2:off+4], 0xFFFF)
		binary.BigEndian.PutUint32(out[off+4:off+8], uint32(paramOff[i*2]))
		off += 8
	}

	for i := 0; i < n; i++ {
		rec := out[off : off+entrySize]
		binary.BigEndian.PutUint16(rec[0:2], entrySize)
		binary.BigEndian.PutUint16(rec[2:4], 0)
		binary.BigEndian.PutUint32(rec[4:8], uint32(audioOff[i]))
		binary.BigEndian.PutUint32(rec[8:12], uint32(paramOff[i]))
		binary.BigEndian.PutUint32(rec[12:16], uint32(len(a.Channels[i].Audio)))
		off += entrySize
	}

	for i := 0; i < n; i++ {
		copy(out[paramOff[i]:], a.Channels[i].ParamBlock())
		copy(out[audioOff[i]:], a.Channels[i].Audio)
	}

	return out
}

func (a Archive) pairs() int {
	return len(a.Channels) / 2
}

func (a Archive) paramStart() uint16 {
	if a.ParamStart < headerSize {
		return 0x10
	}
	return a.ParamStart
}
