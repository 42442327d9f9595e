package common

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func PrintChainDOT(chain *Chain, output io.Writer, options *PrintOptions) error {
	w := bufio.NewWriter(output)

	// Initialize the DOT graph
	fmt.Fprintln(w, `digraph G {`)
	fmt.Fprintln(w, `  rankdir="LR";`)
	fmt.Fprintln(w, `  bgcolor="transparent";`)
	fmt.Fprintln(w, `  node [shape="box", style="filled", fontname="Ubuntu Mono"];`)

	fmt.Fprintf(w, "  \"head\" [label=\"%s\", shape=\"plaintext\", style=\"\"];\n", escapeDOTValue(chain.Name))
	fmt.Fprintln(w, `  "none" [shape="point"];`)

	previous := "head"
	for _, link := range chain.Links {
		nodeID := fmt.Sprintf("node_%d", link.Position)
		label := escapeDOTValue(displayValue(link, options))
		fmt.Fprintf(w, "  \"%s\" [label=\"%s\", fillcolor=\"%s\"];\n", nodeID, label, fillColor(link.Position, len(chain.Links)))
		fmt.Fprintf(w, "  \"%s\" -> \"%s\";\n", previous, nodeID)
		previous = nodeID
	}
	fmt.Fprintf(w, "  \"%s\" -> \"none\";\n", previous)

	// Close the graph
	fmt.Fprintln(w, `}`)
	return w.Flush()
}

func escapeDOTValue(value string) string {
	// Escape special characters for DOT format
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}

func fillColor(position, size int) string {
	switch {
	case position == 0:
		return "lightgreen"
	case position == size-1:
		return "lightpink"
	default:
		return "lightgray"
	}
}
