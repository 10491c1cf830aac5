package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/binaryphile/unmscf/internal/asset"
	"github.com/binaryphile/unmscf/internal/mscf"
	"github.com/binaryphile/unmscf/internal/registry"
)

const (
	appName    = "unmscf"
	appVersion = "1.0"
)

type options struct {
	output  string
	dryRun  bool
	verbose bool
	list    bool
}

// openError marks a failure to open the archive itself, as opposed to a
// read failure inside it.
type openError struct {
	err error
}

func (e *openError) Error() string { return e.err.Error() }
func (e *openError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var archivePath string

	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(stdout, stderr, &archivePath)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, describe(err, archivePath))
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer, archivePath *string) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           appName + " file.mscf",
		Short:         "Extract the DSP streams of a known MSCF sound bank",
		Long:          "Extract every channel of a known MSCF sound bank (bgm.mscf, jgl.mscf) to <NAME>_L.dsp / <NAME>_R.dsp files.",
		Version:       appVersion,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				printIdentities(stdout)
				return nil
			}

			// Wrong argument count is a usage message, not a failure
			if len(args) != 1 {
				printUsage(stdout)
				return nil
			}

			*archivePath = args[0]
			return extract(args[0], opts, stdout, newLogger(stderr, opts.verbose))
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	// Bad flags are usage errors too
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		printUsage(stdout)
		return nil
	})

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default: working directory)")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Show the entry table and what would be written")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	cmd.Flags().BoolVar(&opts.list, "list", false, "List known archives and exit")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func extract(path string, opts options, stdout io.Writer, log *slog.Logger) error {
	names, err := registry.Resolve(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return &openError{err: err}
	}
	defer f.Close()

	archive, err := mscf.Open(f)
	if err != nil {
		return err
	}

	h := archive.Header
	log.Debug("header",
		"version", h.Version,
		"param_start", fmt.Sprintf("0x%x", h.ParamStartOffset),
		"pairs", h.NumPairs,
		"audio_start", fmt.Sprintf("0x%x", h.AudioStartOffset),
		"pointer_table", mscf.PointerTableSize(h),
		"descriptor_table", mscf.DescriptorTableSize(h),
		"entry_table", fmt.Sprintf("0x%x", mscf.EntryTableOffset(h)),
		"size", archive.Size)

	if int(h.NumPairs) > names.Len() {
		log.Warn("archive has more pairs than known names",
			"archive", names.Identity(), "pairs", h.NumPairs, "names", names.Len())
	}

	x := &asset.Extractor{
		Archive:  archive,
		Names:    names,
		Dir:      opts.output,
		Progress: stdout,
		Logger:   log,
	}

	if opts.dryRun {
		items, err := x.Plan()
		printPlan(stdout, archive, items)
		return err
	}

	if opts.output != "" {
		if err := os.MkdirAll(opts.output, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	written, err := x.Extract()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Done! Extracted %d files\n", len(written))
	return nil
}

// describe turns an error into the one-line message printed on stderr.
func describe(err error, path string) string {
	var fe *mscf.FormatError
	var oe *openError
	var be *registry.BoundsError

	switch {
	case errors.Is(err, registry.ErrUnknownArchive):
		return fmt.Sprintf("Error: Unknown file %s.", path)
	case errors.As(err, &oe):
		return fmt.Sprintf("Error opening file: %v", oe.err)
	case errors.As(err, &fe):
		return fmt.Sprintf("Error: Invalid file magic %s (hex: %x).", fe.Printable(), fe.Magic[:])
	case errors.As(err, &be):
		return fmt.Sprintf("Error: %v", be)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s file.mscf\n", appName)
}

func printIdentities(w io.Writer) {
	fmt.Fprintln(w, "Known archives:")
	for _, id := range registry.Identities() {
		names, _ := registry.Lookup(id)
		all := names.All()
		if len(all) == 0 {
			fmt.Fprintf(w, "  %-10s  0 pairs\n", id)
			continue
		}
		fmt.Fprintf(w, "  %-10s %2d pairs (%s ... %s)\n", id, len(all), all[0], all[len(all)-1])
	}
}

func printPlan(w io.Writer, a *mscf.Archive, items []asset.Item) {
	h := a.Header
	fmt.Fprintf(w, "\n%d pairs, %d entries at 0x%x (%d bytes)\n",
		h.NumPairs, h.PhysicalEntryCount(), mscf.EntryTableOffset(h), a.Size)
	fmt.Fprintf(w, "%5s %3s %10s %10s %10s  %s\n", "Entry", "Ch", "Params", "Audio", "Length", "File")
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for _, it := range items {
		fmt.Fprintf(w, "%5d %3c %10s %10s %10d  %s\n",
			it.Index, asset.Channel(it.Index),
			fmt.Sprintf("0x%x", it.Entry.ParamOffset),
			fmt.Sprintf("0x%x", it.Entry.AudioOffset),
			it.Entry.AudioLength, it.Filename)
	}

	fmt.Fprintf(w, "\n[DRY RUN] Would write %d files\n", len(items))
}
