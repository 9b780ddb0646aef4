// Copyright (C) 2018. See AUTHORS.

// Command mt64 prints words from an MT19937-64 generator.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spacemonkeygo/monkit/v3"
	"go.uber.org/zap"

	"github.com/spacemonkeygo/mt64"
)

const (
	exitError = 1
	exitUsage = 2
)

type options struct {
	seed  uint64
	array string
	// set when the flag was given, even with an empty value
	seedSet  bool
	arraySet bool
	count int
	stats bool
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mt64:", err)
		os.Exit(exitError)
	}

	code := run(logger, os.Args[1:], os.Stdout, os.Stderr)
	_ = logger.Sync()
	os.Exit(code)
}

func run(logger *zap.Logger, args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		logger.Error("bad arguments", zap.Error(err))
		return exitUsage
	}

	g, err := newGenerator(opts)
	if err != nil {
		logger.Error("unable to seed generator", zap.Error(err))
		return exitError
	}
	logger.Debug("generating", zap.Int("count", opts.count))

	w := bufio.NewWriter(stdout)
	for i := 0; i < opts.count; i++ {
		fmt.Fprintln(w, g.Uint64())
	}
	if err := w.Flush(); err != nil {
		logger.Error("unable to write output", zap.Error(err))
		return exitError
	}

	if opts.stats {
		monkit.Default.Stats(func(key monkit.SeriesKey, field string, val float64) {
			fmt.Fprintf(stderr, "%s %s %v\n", key, field, val)
		})
	}
	return 0
}

func parseOptions(args []string, stderr io.Writer) (opts options, err error) {
	fs := flag.NewFlagSet("mt64", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Uint64Var(&opts.seed, "seed", mt64.DefaultSeed, "scalar seed")
	fs.StringVar(&opts.array, "array", "", "comma separated array seed, decimal or 0x hex")
	fs.IntVar(&opts.count, "count", 10, "number of words to print")
	fs.BoolVar(&opts.stats, "stats", false, "dump metrics to stderr when done")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, errors.Errorf("unexpected argument: %q", fs.Arg(0))
	}
	if opts.count < 0 {
		return opts, errors.Errorf("negative count: %d", opts.count)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			opts.seedSet = true
		case "array":
			opts.arraySet = true
		}
	})
	if opts.seedSet && opts.arraySet {
		return opts, errors.New("--seed and --array are exclusive")
	}
	return opts, nil
}

func newGenerator(opts options) (*mt64.Generator, error) {
	if !opts.arraySet {
		if opts.seedSet {
			return mt64.NewWithSeed(opts.seed), nil
		}
		return mt64.New(), nil
	}

	words, err := parseArray(opts.array)
	if err != nil {
		return nil, err
	}
	return mt64.NewFromSeed(words)
}

// parseArray splits s on commas. Empty fields are skipped, so "," parses to
// an empty seed.
func parseArray(s string) ([]uint64, error) {
	var words []uint64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		word, err := strconv.ParseUint(field, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad seed word %q", field)
		}
		words = append(words, word)
	}
	return words, nil
}
