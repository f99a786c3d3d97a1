package main

import (
	"flag"
	"fmt"
	"os"
)

type cliConfig struct {
	ResultsDir string
	SpecPath   string
	Verbose    bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SpecPath, "config", "", "Path to comparison spec YAML (optional, defaults built in)")
	flag.BoolVar(&cfg.Verbose, "v", false, "Verbose output (file counts, error detail)")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (file counts, error detail)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <results-dir>\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Compare the latest benchmark results of two implementations and")
		fmt.Fprintln(flag.CommandLine.Output(), "write a Markdown report plus a JSON summary into <results-dir>.")
		fmt.Fprintln(flag.CommandLine.Output(), "\nFlags:")
		flag.PrintDefaults()
	}

	flag.Parse()

	cfg.ResultsDir = flag.Arg(0)

	if cfg.SpecPath == "" {
		cfg.SpecPath = os.Getenv("BENCHCMP_CONFIG")
	}
	if !cfg.Verbose {
		v := os.Getenv("BENCHCMP_VERBOSE")
		cfg.Verbose = v == "1" || v == "true"
	}

	return cfg
}
