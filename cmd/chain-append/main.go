package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/chainlist/pkg/bundle"
	"github.com/spicery/chainlist/pkg/common"
	"github.com/spicery/chainlist/pkg/linkedlist"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const DEFAULT_FORMAT = common.FormatText

func main() {
	// Define command line flags.
	var format = pflag.StringP("format", "f", DEFAULT_FORMAT, "Output format (TEXT, JSON, YAML, ASCIITREE, DOT)")
	var name = pflag.StringP("name", "n", "", "Name of the chain")
	var inputFile = pflag.String("input", "", "Input file, one value per line (defaults to stdin)")
	var bundleFile = pflag.String("bundle", "", "Also save the chain to this SQLite bundle")
	var migrate = pflag.Bool("migrate", false, "Migrate an existing bundle with an old schema")
	var configFile = pflag.String("config", "", "YAML file with print options")
	var indent = pflag.Int("indent", 2, "Indentation level for display purposes")
	var trim = pflag.Int("trim", 0, "Trim values for display purposes")
	var types = pflag.Bool("types", false, "Show the type of each value")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	// Custom usage message.
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [values...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAppends values to a linked list and prints the resulting chain.\n")
		fmt.Fprintf(os.Stderr, "Values come from the arguments, or one per line from the input.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *version {
		fmt.Printf("chain-append version %s\n", Version)
		os.Exit(0)
	}

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	options := &common.PrintOptions{Format: *format, Indent: *indent, TrimTokenOnOutput: *trim, IncludeTypes: *types}
	if *configFile != "" {
		loaded, err := common.LoadPrintOptionsOver(*configFile, *options)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		options = mergeOptions(loaded, options, pflag.CommandLine)
	}

	printFunc, err := common.PickPrintFunc(options.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	list := linkedlist.New[string]()
	if pflag.NArg() > 0 {
		for _, value := range pflag.Args() {
			list.Append(value)
		}
	} else {
		var input io.Reader = os.Stdin
		if *inputFile != "" {
			f, err := os.Open(*inputFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to open input file: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			input = f
		}
		if err := appendLines(list, input); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			os.Exit(1)
		}
	}

	chain := common.FromList(*name, list)

	if *bundleFile != "" {
		if err := saveChain(*bundleFile, *migrate, chain, os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := printFunc(chain, os.Stdout, options); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

// appendLines appends every line of input, in order.
func appendLines(list *linkedlist.LinkedList[string], input io.Reader) error {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		list.Append(scanner.Text())
	}
	return scanner.Err()
}

// saveChain stores chain in the bundle at path. The bundle is closed before
// returning, whatever the outcome.
func saveChain(path string, migrate bool, chain *common.Chain, notices io.Writer) error {
	b, err := bundle.OpenBundle(path, migrate, notices)
	if err != nil {
		return err
	}
	if err := b.SaveChain(chain); err != nil {
		b.Close()
		return err
	}
	return b.Close()
}

// mergeOptions lets flags given on the command line win over the config
// file. loaded already holds the flag defaults for anything the file omits.
func mergeOptions(loaded, flags *common.PrintOptions, fs *pflag.FlagSet) *common.PrintOptions {
	merged := *loaded
	if fs.Changed("format") {
		merged.Format = flags.Format
	}
	if fs.Changed("indent") {
		merged.Indent = flags.Indent
	}
	if fs.Changed("trim") {
		merged.TrimTokenOnOutput = flags.TrimTokenOnOutput
	}
	if fs.Changed("types") {
		merged.IncludeTypes = flags.IncludeTypes
	}
	return &merged
}
