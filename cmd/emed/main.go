// Package main is the entry point for the emed editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emed-editor/emed/internal/app"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "emed: %v\n", err)
		return 1
	}

	// The screen must be restored on every exit path, including panics,
	// or the terminal is left in raw mode.
	defer func() {
		if r := recover(); r != nil {
			application.Screen().Fini()
			panic(r)
		}
		application.Screen().Fini()
	}()

	if err := application.Run(); err != nil {
		application.Screen().Fini()
		fmt.Fprintf(os.Stderr, "emed: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigDir, "config", defaultConfigDir(), "Directory holding config.toml / config.yaml and init.lua")
	flag.BoolVar(&opts.Debug, "debug", false, "Write a debug log to the temp directory")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "emed - a small terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: emed [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("emed %s\n", version)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		opts.Filename = flag.Arg(0)
	}
	return opts
}

func defaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "emed")
}
