// SPDX-License-Identifier: EPL-2.0

// Command modinfo prints what a tracker module or sample file contains.
//
//	modinfo [flags] file
//
// A path of "-" reads standard input.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ik5/trackload"
	"github.com/ik5/trackload/song"
	"github.com/ik5/trackload/source"
)

var logger *log.Logger

type options struct {
	noSamples  bool
	noPatterns bool
	dump       bool
	pattern    int
	sample     bool
	info       bool
}

func main() {
	logger = log.New(os.Stderr, "", log.Ldate|log.Ltime)

	var opts options
	pflag.BoolVar(&opts.noSamples, "no-samples", false, "skip sample data")
	pflag.BoolVar(&opts.noPatterns, "no-patterns", false, "skip pattern data")
	pflag.BoolVarP(&opts.dump, "dump", "d", false, "dump the decoded structure")
	pflag.IntVarP(&opts.pattern, "pattern", "p", -1, "print pattern `N` as a grid")
	pflag.BoolVarP(&opts.sample, "sample", "s", false, "load the file as a standalone sample")
	pflag.BoolVarP(&opts.info, "info", "i", false, "only probe the file header")
	pflag.Parse()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: modinfo [flags] <file>")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(opts, pflag.Arg(0)); err != nil {
		if errors.Is(err, song.ErrUnsupported) {
			logger.Fatalf("%s: unsupported file type", pflag.Arg(0))
		}
		logger.Fatalf("%v", err)
	}
}

func run(opts options, path string) error {
	var flags song.LoadFlags
	if opts.noSamples {
		flags |= song.LoadNoSamples
	}
	if opts.noPatterns {
		flags |= song.LoadNoPatterns
	}

	dec := trackload.Decoder{
		Registry: trackload.DefaultRegistry(),
		Flags:    flags,
		Logger:   logger,
	}

	if opts.sample {
		smp, err := dec.LoadSample(path)
		if err != nil {
			return err
		}
		writeSample(os.Stdout, 0, smp)
		if opts.dump {
			dumper().Fdump(os.Stdout, smp)
		}
		return nil
	}

	if opts.info {
		src, err := source.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %w", song.ErrFile, err)
		}
		info, ok := dec.Info(src.Bytes())
		if !ok {
			return song.ErrUnsupported
		}
		fmt.Printf("%s (%s): %q\n", info.Description, info.Format, info.Title)
		return nil
	}

	s, err := dec.DecodeFile(path)
	if err != nil {
		return err
	}

	writeSummary(os.Stdout, s)

	if opts.pattern >= 0 {
		if err := writePattern(os.Stdout, s, opts.pattern, terminalWidth()); err != nil {
			return err
		}
	}

	if opts.dump {
		dumper().Fdump(os.Stdout, s)
	}
	return nil
}

// dumper is the --dump configuration. Pointer addresses are left out so
// two dumps of the same file are identical.
func dumper() *spew.ConfigState {
	return &spew.ConfigState{
		Indent:                  "  ",
		MaxDepth:                4,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
}

const defaultWidth = 80

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
