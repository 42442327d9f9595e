package linkedlist

import "iter"

// LinkedList is an append-only singly linked list. It owns the chain of
// nodes reachable from its head. The zero value is an empty list.
//
// A LinkedList is not safe for concurrent use; callers that share one between
// goroutines must guard it themselves.
type LinkedList[T any] struct {
	head *Node[T]
	size int
}

// New creates an empty list.
func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Head returns the first node, or nil if the list is empty.
func (l *LinkedList[T]) Head() *Node[T] {
	return l.head
}

// Size returns the number of nodes in the chain.
func (l *LinkedList[T]) Size() int {
	return l.size
}

// Append adds data as the new tail. The tail is found by walking from the
// head, so each call is linear in the current size.
func (l *LinkedList[T]) Append(data T) {
	node := NewNode(data)
	if l.head == nil {
		l.head = node
		l.size++
		return
	}

	current := l.head
	for current.Next != nil {
		current = current.Next
	}
	current.Next = node
	l.size++
}

// All returns an iterator over the values in chain order.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.Next {
			if !yield(n.Data) {
				return
			}
		}
	}
}

// Values returns a copy of the values in chain order.
func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}
