package mscf

// Table record sizes
const (
	PointerSize    = 4  // one absolute uint32 offset per entry
	DescriptorSize = 8  // length(2) + unknown(2) + offset(4), one per pair
	EntrySize      = 16 // see Entry
)

// PointerTableSize returns the byte size of the pointer table.
func PointerTableSize(h Header) int64 {
	return int64(h.PhysicalEntryCount()) * PointerSize
}

// DescriptorTableSize returns the byte size of the parameter descriptor table.
func DescriptorTableSize(h Header) int64 {
	return int64(h.NumPairs) * DescriptorSize
}

// EntryTableOffset returns the absolute offset of the entry table.
// This is a pure function: Header → offset. Nothing is read.
//
// The two tables between paramStartOffset and the entry table are skipped
// by size alone: pairs*2*4 + pairs*8 = pairs*16.
func EntryTableOffset(h Header) int64 {
	return int64(h.ParamStartOffset) + int64(h.NumPairs)*16
}
