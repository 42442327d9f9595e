package common

import (
	"fmt"
	"io"

	asciitree "github.com/thediveo/go-asciitree"
)

type AsciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []AsciiNode `asciitree:"children"`
}

// convertToTree hangs each link off its predecessor, so the tree's depth
// follows the Next references.
func convertToTree(chain *Chain, options *PrintOptions) AsciiNode {
	root := AsciiNode{
		Label: fmt.Sprintf("chain: %s", chain.Name),
		Props: []string{fmt.Sprintf("size: %d", chain.Size)},
	}
	if len(chain.Links) > 0 {
		root.Children = []AsciiNode{convertLink(chain.Links, options)}
	}
	return root
}

func convertLink(links []*Link, options *PrintOptions) AsciiNode {
	link := links[0]
	node := AsciiNode{
		Label: fmt.Sprintf("node %d: %s", link.Position, TrimValue(link.Value, options.TrimTokenOnOutput)),
	}
	if options.IncludeTypes && link.Type != "" {
		node.Props = append(node.Props, fmt.Sprintf("type: %s", link.Type))
	}
	if len(links) > 1 {
		node.Children = []AsciiNode{convertLink(links[1:], options)}
	}
	return node
}

func PrintChainAsciiTree(chain *Chain, output io.Writer, options *PrintOptions) error {
	_, err := fmt.Fprintln(output, asciitree.RenderFancy(convertToTree(chain, options)))
	return err
}
