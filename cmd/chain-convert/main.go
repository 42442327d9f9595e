package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/chainlist/pkg/bundle"
	"github.com/spicery/chainlist/pkg/common"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const DEFAULT_FORMAT = common.FormatText

func main() {
	// Define command line flags.
	var format = pflag.StringP("format", "f", DEFAULT_FORMAT, "Output format (TEXT, JSON, YAML, ASCIITREE, DOT)")
	var bundleFile = pflag.String("bundle", "", "Read the chain from this SQLite bundle instead of stdin")
	var name = pflag.StringP("name", "n", "", "Name of the chain to read from the bundle")
	var list = pflag.Bool("list", false, "List the chains stored in the bundle and exit")
	var migrate = pflag.Bool("migrate", false, "Migrate an existing bundle with an old schema")
	var indent = pflag.Int("indent", 2, "Indentation level for display purposes")
	var trim = pflag.Int("trim", 0, "Trim values for display purposes")
	var types = pflag.Bool("types", false, "Show the type of each value")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	// Custom usage message.
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nConverts a chain to various output formats.\n")
		fmt.Fprintf(os.Stderr, "Reads chain JSON from stdin, or a named chain from a bundle.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *version {
		fmt.Printf("chain-convert version %s\n", Version)
		os.Exit(0)
	}

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	printFunc, err := common.PickPrintFunc(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := validateFlags(*bundleFile, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		pflag.Usage()
		os.Exit(1)
	}

	if *list {
		if err := listChains(*bundleFile, *migrate, os.Stdout, os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var chain *common.Chain
	if *bundleFile != "" {
		chain, err = loadChain(*bundleFile, *name, *migrate, os.Stderr)
	} else {
		chain, err = readChain(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = printFunc(chain, os.Stdout, &common.PrintOptions{
		Format:            *format,
		Indent:            *indent,
		TrimTokenOnOutput: *trim,
		IncludeTypes:      *types,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

var errListNeedsBundle = errors.New("--list requires --bundle")

// validateFlags rejects flag combinations that cannot be honoured.
func validateFlags(bundleFile string, list bool) error {
	if list && bundleFile == "" {
		return errListNeedsBundle
	}
	return nil
}

// readChain decodes chain JSON and checks it is consistent.
func readChain(input io.Reader) (*common.Chain, error) {
	chain, err := common.ReadChainJSON(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON input: %w", err)
	}
	if err := chain.Validate(); err != nil {
		return nil, err
	}
	return chain, nil
}

// loadChain reads a named chain from the bundle at path and closes it.
func loadChain(path, name string, migrate bool, notices io.Writer) (*common.Chain, error) {
	b, err := bundle.OpenBundle(path, migrate, notices)
	if err != nil {
		return nil, err
	}
	defer b.Close()
	return b.LoadChain(name)
}

// listChains prints the name of every chain in the bundle at path, one per line.
func listChains(path string, migrate bool, output, notices io.Writer) error {
	b, err := bundle.OpenBundle(path, migrate, notices)
	if err != nil {
		return err
	}
	defer b.Close()

	names, err := b.ChainNames()
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Fprintln(output, n)
	}
	return nil
}
