package asset

// Ext is the extension of every extracted file.
const Ext = ".dsp"

// Channel returns the channel letter of entry i: 'L' for even, 'R' for odd.
func Channel(i int) byte {
	if i%2 == 0 {
		return 'L'
	}
	return 'R'
}

// Filename creates the output name of entry i of a pair named base.
// This is a pure function: (base, index) → filename
//
// Format: BASE_L.dsp / BASE_R.dsp
//
// Base names come from the registry and are used verbatim.
func Filename(base string, i int) string {
	return base + "_" + string(Channel(i)) + Ext
}
