package linkedlist

// Node is a single element of a chain: one value and a link to the next node.
// Next is nil for the last node.
type Node[T any] struct {
	Data T        // The stored value
	Next *Node[T] // The succeeding node, or nil at the tail
}

// NewNode creates an unlinked node holding data.
func NewNode[T any](data T) *Node[T] {
	return &Node[T]{Data: data}
}
