package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/fixedseq/internal/demo"
	"github.com/wippyai/fixedseq/memory"
)

func main() {
	if err := execute(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute parses args and runs the demo, writing plain or styled steps to out.
// Deferred cleanup completes before it returns.
func execute(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("seqdemo", flag.ContinueOnError)
	var (
		interactive = fs.Bool("i", false, "Interactive mode with TUI")
		useMemory   = fs.Bool("memory", false, "Round-trip the final sequence through wazero linear memory")
		offset      = fs.Uint("offset", 64, "Byte offset for the memory round trip")
		verbose     = fs.Bool("v", false, "Debug logging")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *offset > math.MaxUint32 {
		return fmt.Errorf("offset %d does not fit in 32 bits", *offset)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()
	memory.SetLogger(logger)
	defer memory.SetLogger(nil)

	if *interactive {
		return runInteractive(*useMemory, uint32(*offset))
	}
	return run(out, *useMemory, uint32(*offset))
}

// collect runs the walk-through and, when useMemory is set, appends a
// store/load round trip of the final sequence through a scratch module.
func collect(useMemory bool, offset uint32) (steps []demo.Step, err error) {
	res, err := demo.Run()
	if err != nil {
		return nil, fmt.Errorf("walk-through: %w", err)
	}
	if !useMemory {
		return res.Steps, nil
	}

	ctx := context.Background()
	scratch, err := memory.NewScratch(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("scratch memory: %w", err)
	}
	defer func() {
		if cerr := scratch.Close(ctx); cerr != nil && err == nil {
			err = fmt.Errorf("close scratch memory: %w", cerr)
		}
	}()

	step, err := demo.RoundTrip(scratch.Memory(), offset, res.Final)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return append(res.Steps, step), nil
}

func run(out io.Writer, useMemory bool, offset uint32) error {
	steps, err := collect(useMemory, offset)
	if err != nil {
		return err
	}

	f, ok := out.(*os.File)
	styled := ok && term.IsTerminal(int(f.Fd()))
	for _, s := range steps {
		if !styled {
			fmt.Fprintln(out, s)
			continue
		}
		fmt.Fprintln(out, renderStep(s, resultStyle))
	}
	return nil
}
