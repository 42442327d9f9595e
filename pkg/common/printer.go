package common

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const FormatText = "TEXT"
const FormatJSON = "JSON"
const FormatYAML = "YAML"
const FormatAsciiTree = "ASCIITREE"
const FormatDOT = "DOT"

var ErrUnknownFormat = errors.New("unknown format")

// PrintFunc writes a chain to output in one particular format.
type PrintFunc func(chain *Chain, output io.Writer, options *PrintOptions) error

// TrimValue shortens a value to at most trimLength runes for display.
func TrimValue(value string, trimLength int) string {
	runes := []rune(value)
	if trimLength > 0 && len(runes) > trimLength {
		// Reserve space for Unicode ellipsis (1 character: "…")
		if trimLength >= 2 {
			return string(runes[:trimLength-1]) + "…"
		}
		return string(runes[:trimLength])
	}
	return value
}

func PickPrintFunc(format string) (PrintFunc, error) {
	switch strings.ToUpper(format) {
	case FormatText:
		return PrintChainText, nil
	case FormatJSON:
		return PrintChainJSON, nil
	case FormatYAML:
		return PrintChainYAML, nil
	case FormatAsciiTree:
		return PrintChainAsciiTree, nil
	case FormatDOT:
		return PrintChainDOT, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// displayValue applies the trim and type options to a link's value.
func displayValue(link *Link, options *PrintOptions) string {
	value := TrimValue(link.Value, options.TrimTokenOnOutput)
	if options.IncludeTypes && link.Type != "" {
		return fmt.Sprintf("%s (%s)", value, link.Type)
	}
	return value
}
