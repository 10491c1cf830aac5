// Package asset turns MSCF entries into standalone .dsp files.
package asset

import (
	"fmt"
	"os"

	"github.com/binaryphile/unmscf/internal/mscf"
)

// Build assembles a .dsp file from an entry's parameter block and audio.
// This is a pure function: (param, audio) → complete .dsp file bytes.
//
// The parameter block is the file header; no other header is added.
func Build(param, audio []byte) ([]byte, error) {
	if len(param) != mscf.ParamSize {
		return nil, fmt.Errorf("param block is %d bytes, want %d", len(param), mscf.ParamSize)
	}

	dsp := make([]byte, len(param)+len(audio))
	copy(dsp, param)
	copy(dsp[len(param):], audio)

	return dsp, nil
}

// Write creates or truncates path and writes data to it.
// This is boundary code - performs file I/O.
//
// A partially written file is removed.
func Write(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
