// jsxer - decompiles JSXBIN files back to ExtendScript source
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/jsxbin/config"
)

func main() {
	output := flag.String("o", "", "Output file ('-' for stdout); default is <input> with the configured suffix")
	unblind := flag.Bool("unblind", false, "Replace invalid identifier names with symbol_<id>")
	depth := flag.Int("depth", 0, "Recursion budget (0 = configured default)")
	format := flag.String("format", "", "Output format: js, cbor or yaml")
	version := flag.String("version", "", "Force the format version (1.0 or 2.0) instead of reading the header")
	verbosity := flag.Int("v", 0, "Log verbosity; negative values silence logging, higher values add detail")
	configPath := flag.String("config", "", "Path to jsxbin.toml (default: search upward from the current directory)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jsxer [options] file.jsxbin...\n\n")
		fmt.Fprintf(os.Stderr, "Decompiles JSXBIN files into readable ExtendScript.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  jsxer script.jsxbin              # Writes script.jsx\n")
		fmt.Fprintf(os.Stderr, "  jsxer -o - script.jsxbin         # Prints to stdout\n")
		fmt.Fprintf(os.Stderr, "  jsxer -unblind *.jsxbin          # Rename obfuscated identifiers\n")
		fmt.Fprintf(os.Stderr, "  jsxer -format yaml script.jsxbin # Dump the decoded tree\n")
	}
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	if *output != "" && len(paths) > 1 {
		fmt.Fprintf(os.Stderr, "Error: -o requires a single input file\n")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over the configuration file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "unblind":
			cfg.Decode.Unblind = *unblind
		case "depth":
			cfg.Decode.DepthBudget = *depth
		case "format":
			cfg.Output.Format = *format
		case "version":
			cfg.Decode.Version = *version
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	failed := false
	for _, path := range paths {
		if err := decompilePath(path, *output, cfg, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.FindAndLoad(wd)
}
