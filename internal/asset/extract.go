package asset

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/binaryphile/unmscf/internal/mscf"
	"github.com/binaryphile/unmscf/internal/registry"
)

// Item is one planned output file.
type Item struct {
	Index    int
	Name     string // semantic name of the pair
	Filename string
	Entry    mscf.Entry
}

// Extractor writes every entry of an archive to its own .dsp file.
type Extractor struct {
	Archive  *mscf.Archive
	Names    registry.Names
	Dir      string       // output directory; "" means the working directory
	Progress io.Writer    // receives "Saving NAME..." lines; may be nil
	Logger   *slog.Logger // may be nil
}

// Plan resolves the output file of every entry without reading audio or
// writing anything. It fails on the first entry without a registered name.
func (x *Extractor) Plan() ([]Item, error) {
	items := make([]Item, 0, len(x.Archive.Entries))
	for i, e := range x.Archive.Entries {
		name, err := x.Names.ForEntry(i)
		if err != nil {
			return items, fmt.Errorf("entry %d: %w", i, err)
		}
		items = append(items, Item{Index: i, Name: name, Filename: Filename(name, i), Entry: e})
	}
	return items, nil
}

// Extract writes all entries in index order and returns the paths written.
// It stops at the first failure; files already written are kept.
func (x *Extractor) Extract() ([]string, error) {
	var written []string
	for i := range x.Archive.Entries {
		path, err := x.ExtractEntry(i)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// ExtractEntry reads entry i's parameter block and audio and writes them to
// <name>_<L|R>.dsp. The buffers do not outlive the call.
func (x *Extractor) ExtractEntry(i int) (string, error) {
	log := x.logger().With("entry", i)

	param, err := x.Archive.Param(i)
	if err != nil {
		return "", err
	}

	audio, err := x.Archive.Audio(i)
	if err != nil {
		return "", err
	}

	e := x.Archive.Entries[i]
	log.Debug("read regions",
		"param_offset", fmt.Sprintf("0x%x", e.ParamOffset),
		"audio_offset", fmt.Sprintf("0x%x", e.AudioOffset),
		"audio_length", e.AudioLength)

	name, err := x.Names.ForEntry(i)
	if err != nil {
		return "", fmt.Errorf("entry %d: %w", i, err)
	}

	filename := Filename(name, i)
	path := filepath.Join(x.Dir, filename)

	if x.Progress != nil {
		fmt.Fprintf(x.Progress, "Saving %s...\n", filename)
	}

	dsp, err := Build(param, audio)
	if err != nil {
		return "", fmt.Errorf("entry %d: %w", i, err)
	}

	if err := Write(path, dsp); err != nil {
		return "", err
	}

	log.Debug("wrote asset", "path", path, "bytes", len(dsp))
	return path, nil
}

func (x *Extractor) logger() *slog.Logger {
	if x.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return x.Logger
}
