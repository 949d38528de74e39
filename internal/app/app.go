// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"fa2dbg/internal/appcore"
	"fa2dbg/internal/cli"
	"fa2dbg/internal/clibase"
	"fa2dbg/internal/config"
	"fa2dbg/internal/version"
	"fa2dbg/internal/writers"
)

const name = "fasta2debruijn"

// flushCode flushes w and maps the outcome onto an exit code, keeping code
// when the flush succeeds or hits a closed pipe.
func flushCode(w *bufio.Writer, stderr io.Writer, code int) int {
	if e := w.Flush(); writers.IsBrokenPipe(e) {
		return code
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitIO
	}
	return code
}

// RunContext parses argv, layers dotenv/env/config settings under the
// explicit flags, validates, and runs the build.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return runWithEnv(parent, argv, stdout, stderr, os.LookupEnv)
}

func runWithEnv(parent context.Context, argv []string, stdout, stderr io.Writer, lookup func(string) (string, bool)) int {
	outw := bufio.NewWriter(stdout)
	errw := bufio.NewWriter(stderr)
	defer func() { _ = errw.Flush() }()

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	usageTo := func(w *bufio.Writer, code int) int {
		fs.SetOutput(w)
		fs.Usage()
		return flushCode(w, stderr, code)
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return usageTo(outw, appcore.ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return usageTo(outw, appcore.ExitOK)
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		clibase.PrintExamples(outw, name, clibase.QuickstartBody(name))
		return flushCode(outw, stderr, appcore.ExitOK)
	case err != nil:
		_, _ = fmt.Fprintln(errw, err)
		return usageTo(errw, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushCode(outw, stderr, appcore.ExitOK)
	}

	if err := config.LoadDotenv(opts.EnvFile); err != nil {
		_, _ = fmt.Fprintln(errw, err)
		return appcore.ExitUsage
	}

	fileSettings, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(errw, err)
		return appcore.ExitUsage
	}
	envSettings, err := config.FromEnv(lookup)
	if err != nil {
		_, _ = fmt.Fprintln(errw, err)
		return appcore.ExitUsage
	}
	opts.Apply(fileSettings.Overlay(envSettings))

	if err := cli.Validate(opts); err != nil {
		_, _ = fmt.Fprintln(errw, err)
		return usageTo(errw, appcore.ExitUsage)
	}
	_ = errw.Flush()

	return appcore.Run(parent, stdout, stderr, appcore.Options{
		Files:          opts.Fasta,
		KmerLength:     opts.KmerLength,
		Component:      opts.Component,
		StrandSpecific: opts.StrandSpecific,
		GraphPerRecord: opts.GraphPerRecord,
		Threads:        opts.Threads,
		Output:         opts.Output,
		SummaryFile:    opts.SummaryFile,
		Progress:       opts.Progress,
		Monitor:        opts.Monitor,
	})
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
