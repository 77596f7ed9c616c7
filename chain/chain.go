// Package chain is a singly linked list with positional access.
// Positions are zero based: [0, Length()) for access, [0, Length()] for insertion.
package chain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("get() called with an empty list or invalid position")
)

type node[T any] struct {
	item T
	next *node[T]
}

type Chain[T any] struct {
	head      *node[T]
	itemCount int
}

func New[T any]() *Chain[T] {
	return &Chain[T]{}
}

func FromSlice[T any](items ...T) *Chain[T] {
	c := New[T]()
	for _, item := range items {
		c.Append(item)
	}
	return c
}

func (c *Chain[T]) IsEmpty() bool {
	return c.itemCount == 0
}

func (c *Chain[T]) Length() int {
	return c.itemCount
}

// Insert places item at position, the entry previously there moves to position+1.
func (c *Chain[T]) Insert(position int, item T) bool {
	if position < 0 || position > c.itemCount {
		return false
	}
	newNode := &node[T]{item: item}
	if position == 0 {
		newNode.next = c.head
		c.head = newNode
	} else {
		prev := c.nodeAt(position - 1)
		newNode.next = prev.next
		prev.next = newNode
	}
	c.itemCount++
	return true
}

func (c *Chain[T]) Append(item T) {
	c.Insert(c.itemCount, item)
}

func (c *Chain[T]) Remove(position int) bool {
	if position < 0 || position >= c.itemCount {
		return false
	}
	var cur *node[T]
	if position == 0 {
		cur = c.head
		c.head = cur.next
	} else {
		prev := c.nodeAt(position - 1)
		cur = prev.next
		prev.next = cur.next
	}
	cur.next = nil
	c.itemCount--
	return true
}

func (c *Chain[T]) Clear() {
	for !c.IsEmpty() {
		c.Remove(0)
	}
}

func (c *Chain[T]) Get(position int) (T, error) {
	n := c.nodeAt(position)
	if n == nil {
		var zero T
		return zero, fmt.Errorf("%w: position %d, length %d", ErrInvalidPosition, position, c.itemCount)
	}
	return n.item, nil
}

// Head returns the first item without removing it.
func (c *Chain[T]) Head() (T, bool) {
	if c.head == nil {
		var zero T
		return zero, false
	}
	return c.head.item, true
}

// PopFront removes and returns the first item.
func (c *Chain[T]) PopFront() (T, bool) {
	item, ok := c.Head()
	if ok {
		c.Remove(0)
	}
	return item, ok
}

// Range calls fn for each item in order until fn returns false.
func (c *Chain[T]) Range(fn func(position int, item T) bool) {
	var (
		cur = c.head
		i   = 0
	)
	for cur != nil {
		if !fn(i, cur.item) {
			return
		}
		cur = cur.next
		i++
	}
}

// IndexFunc returns the position of the first item matching pred, or -1.
func (c *Chain[T]) IndexFunc(pred func(T) bool) int {
	found := -1
	c.Range(func(i int, item T) bool {
		if pred(item) {
			found = i
			return false
		}
		return true
	})
	return found
}

func (c *Chain[T]) ToSlice() []T {
	res := make([]T, 0, c.itemCount)
	c.Range(func(_ int, item T) bool {
		res = append(res, item)
		return true
	})
	return res
}

// Clone copies the node structure, items are copied by assignment.
func (c *Chain[T]) Clone() *Chain[T] {
	return c.CloneFunc(func(item T) T { return item })
}

// CloneFunc copies the node structure and every item through copyItem.
func (c *Chain[T]) CloneFunc(copyItem func(T) T) *Chain[T] {
	res := &Chain[T]{itemCount: c.itemCount}
	if c.head == nil {
		return res
	}
	res.head = &node[T]{item: copyItem(c.head.item)}
	var (
		tail = res.head
		orig = c.head.next
	)
	for orig != nil {
		tail.next = &node[T]{item: copyItem(orig.item)}
		tail = tail.next
		orig = orig.next
	}
	return res
}

// nodeAt walks position hops from head, nil when position is outside [0, itemCount).
func (c *Chain[T]) nodeAt(position int) *node[T] {
	if position < 0 || position >= c.itemCount {
		return nil
	}
	cur := c.head
	for skip := 0; skip < position; skip++ {
		cur = cur.next
	}
	return cur
}
