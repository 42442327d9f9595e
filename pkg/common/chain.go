package common

import (
	"fmt"

	"github.com/spicery/chainlist/pkg/linkedlist"
)

// Chain is a type-erased view of a linked list, used for printing and
// persistence.
type Chain struct {
	Name  string  `json:"name" yaml:"name"`
	Size  int     `json:"size" yaml:"size"`
	Links []*Link `json:"links" yaml:"links"`
}

// Link is one node of a Chain.
type Link struct {
	Position int    `json:"position" yaml:"position"` // Zero-based distance from the head
	Value    string `json:"value" yaml:"value"`       // Printed form of the node's data
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
}

// FromList walks l from its head and records every node.
func FromList[T any](name string, l *linkedlist.LinkedList[T]) *Chain {
	chain := &Chain{
		Name:  name,
		Size:  l.Size(),
		Links: make([]*Link, 0, l.Size()),
	}
	position := 0
	for n := l.Head(); n != nil; n = n.Next {
		chain.Links = append(chain.Links, &Link{
			Position: position,
			Value:    fmt.Sprint(n.Data),
			Type:     fmt.Sprintf("%T", n.Data),
		})
		position++
	}
	return chain
}

// ToList rebuilds a list of the printed values, in position order.
func (c *Chain) ToList() *linkedlist.LinkedList[string] {
	l := linkedlist.New[string]()
	for _, link := range c.Links {
		l.Append(link.Value)
	}
	return l
}

// Validate checks that Size matches the links and that positions run 0..n-1.
func (c *Chain) Validate() error {
	if c.Size != len(c.Links) {
		return fmt.Errorf("chain %q has size %d but %d links", c.Name, c.Size, len(c.Links))
	}
	for i, link := range c.Links {
		if link == nil {
			return fmt.Errorf("chain %q has a missing link at position %d", c.Name, i)
		}
		if link.Position != i {
			return fmt.Errorf("chain %q has link with position %d at position %d", c.Name, link.Position, i)
		}
	}
	return nil
}
