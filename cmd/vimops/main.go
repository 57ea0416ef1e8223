// Package main is the entry point for the vimops command.
//
// vimops loads a file into a buffer, runs a Lua script of normal-mode
// operations against it and writes the result to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errUsage marks errors in the command line itself.
var errUsage = errors.New("usage")

// options holds the parsed command line.
type options struct {
	ConfigPath string
	ScriptPath string
	Expr       string
	Line       int // 1-indexed
	Col        int // 0-indexed
	LogLevel   string
	Watch      bool
	Metrics    bool
	Diff       bool
	File       string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, opts, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	var showVersion bool

	fs := flag.NewFlagSet("vimops", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.ScriptPath, "script", "", "Lua script to run")
	fs.StringVar(&opts.Expr, "e", "", "Lua source to run")
	fs.IntVar(&opts.Line, "line", 1, "Initial caret line (1-indexed)")
	fs.IntVar(&opts.Col, "col", 0, "Initial caret column (0-indexed)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config")
	fs.BoolVar(&opts.Watch, "watch", false, "Re-run when the config file changes")
	fs.BoolVar(&opts.Metrics, "metrics", false, "Log dispatch statistics after each run")
	fs.BoolVar(&opts.Diff, "diff", false, "Write a unified diff instead of the edited text")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "vimops - normal-mode operations on a text file\n\n")
		fmt.Fprintf(stderr, "Usage: vimops [options] [file]\n\n")
		fmt.Fprintf(stderr, "Reads stdin when file is omitted or \"-\".\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  vimops -e 'ops.yy() ops.p()' notes.txt   Duplicate the first line\n")
		fmt.Fprintf(stderr, "  vimops -line 3 -e 'ops.dd(2)' notes.txt  Delete lines 3 and 4\n")
		fmt.Fprintf(stderr, "  vimops -diff -e 'ops.o()' notes.txt      Show the change as a diff\n")
		fmt.Fprintf(stderr, "  vimops -script edit.lua -watch -c vimops.toml notes.txt\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if showVersion {
		fmt.Fprintf(stderr, "vimops %s\n", version)
		fmt.Fprintf(stderr, "Commit: %s\n", commit)
		fmt.Fprintf(stderr, "Built: %s\n", date)
		return opts, flag.ErrHelp
	}

	switch {
	case opts.ScriptPath != "" && opts.Expr != "":
		return opts, fmt.Errorf("%w: -script and -e are exclusive", errUsage)
	case opts.Watch && opts.ConfigPath == "":
		return opts, fmt.Errorf("%w: -watch needs -config", errUsage)
	case opts.Line < 1 || opts.Col < 0:
		return opts, fmt.Errorf("%w: invalid caret %d:%d", errUsage, opts.Line, opts.Col)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.File = fs.Arg(0)
	default:
		return opts, fmt.Errorf("%w: expected at most one file, got %d", errUsage, fs.NArg())
	}
	return opts, nil
}
