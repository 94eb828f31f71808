// Package main provides the CLI entrypoint for iface-check.
//
// iface-check loads a YAML interface catalog and a set of Go packages, then
// reports which exported named types conform to which catalog interfaces:
//
//	iface-check --catalog interfaces.yaml [--iface Name] [--type pkg.Name] [--dump] [-v] patterns...
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"interface-caster/internal/analyze"
	"interface-caster/internal/catalog"
	"interface-caster/internal/common"
	"interface-caster/internal/diagnostic"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("iface-check", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: iface-check --catalog file.yaml [flags] patterns...")
		fs.PrintDefaults()
	}

	catalogPath := fs.StringP("catalog", "c", "", "path to the YAML interface catalog")
	ifaceName := fs.StringP("iface", "i", "", "check only this interface")
	typeName := fs.StringP("type", "t", "", "check only this type")
	dump := fs.Bool("dump", false, "dump the parsed catalog")
	verbose := fs.BoolP("verbose", "v", false, "log progress to stderr")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *catalogPath == "" {
		fmt.Fprintln(stderr, "iface-check: --catalog is required")
		fs.Usage()

		return exitUsage
	}

	if _, ok := common.First(fs.Args()); !ok {
		fmt.Fprintln(stderr, "iface-check: at least one package pattern is required")
		return exitUsage
	}

	logger := newLogger(stderr, *verbose)

	var (
		file  *catalog.File
		graph *analyze.TypeGraph
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error

		file, err = catalog.LoadFile(*catalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		logger.V(1).Info("catalog loaded", "path", *catalogPath, "interfaces", len(file.Interfaces))

		return nil
	})
	g.Go(func() error {
		var err error

		graph, err = analyze.NewAnalyzer(analyze.WithLogger(logger)).LoadPackages(gctx, fs.Args()...)
		if err != nil {
			return fmt.Errorf("load packages: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	if *dump {
		spew.Fdump(stdout, file)
	}

	if diags := catalog.Validate(file); !diags.IsValid() {
		report(stderr, diags)
		return exitFailure
	}

	cat, err := catalog.Build(file)
	if err != nil {
		fmt.Fprintln(stderr, "build catalog:", err)
		return exitFailure
	}

	diags := check(graph, cat, checkOptions{Interface: *ifaceName, Type: *typeName})
	report(stdout, diags)

	logger.V(1).Info("check finished",
		"errors", len(diags.Errors), "warnings", len(diags.Warnings), "infos", len(diags.Infos))

	if !diags.IsValid() {
		return exitFailure
	}

	return exitOK
}

func newLogger(w io.Writer, verbose bool) logr.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)

	return zapr.NewLogger(zap.New(core))
}

func report(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
