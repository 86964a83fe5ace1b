// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package list provides a singly linked list whose elements are owned
// exclusively by the list and are only ever exposed to callers by value
// or by reference to the stored value.
package list

import (
	"fmt"
	"iter"
	"strings"
)

// Single provides a singly linked list. Each element is reachable from
// exactly one predecessor, or from the head of the list. The zero value
// is an empty list ready to use. A Single must not be copied by value,
// use Clone or Assign instead. It is not safe for concurrent use.
type Single[T any] struct {
	sentinel singleItem[T] // sentinel.next is the head, nil when empty.
	tail     *singleItem[T] // valid only when len > 0.
	len      int
	opts     options
}

type singleItem[T any] struct {
	next *singleItem[T]
	T    T
}

// NewSingle returns a new, empty, list.
func NewSingle[T any](opts ...Option[T]) *Single[T] {
	dl := &Single[T]{}
	for _, fn := range opts {
		fn(&dl.opts)
	}
	dl.Reset()
	return dl
}

// Reset releases every element in the list, leaving it empty.
func (dl *Single[T]) Reset() {
	for it := dl.sentinel.next; it != nil; {
		next := it.next
		*it = singleItem[T]{}
		it = next
	}
	dl.sentinel.next = nil
	dl.tail = nil
	dl.len = 0
}

// Len returns the number of elements in the list.
func (dl *Single[T]) Len() int {
	return dl.len
}

// Forward returns an iterator over the values in the list from head
// to tail.
func (dl *Single[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := dl.sentinel.next; n != nil; n = n.next {
			if !yield(n.T) {
				break
			}
		}
	}
}

// All returns an iterator over the positions and values in the list.
func (dl *Single[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := dl.sentinel.next; n != nil; n = n.next {
			if !yield(i, n.T) {
				break
			}
			i++
		}
	}
}

// Values returns the values in the list from head to tail.
func (dl *Single[T]) Values() []T {
	vals := make([]T, 0, dl.len)
	for v := range dl.Forward() {
		vals = append(vals, v)
	}
	return vals
}

func (dl *Single[T]) tailItem() *singleItem[T] {
	if dl.len == 0 {
		return &dl.sentinel
	}
	return dl.tail
}

// itemBefore returns the item preceding position pos, the sentinel for 0.
func (dl *Single[T]) itemBefore(pos int) *singleItem[T] {
	it := &dl.sentinel
	for range pos {
		it = it.next
	}
	return it
}

func (dl *Single[T]) allocate(val T) (*singleItem[T], error) {
	if dl.opts.nodeLimit > 0 && dl.len >= dl.opts.nodeLimit {
		return nil, ErrOutOfMemory
	}
	return &singleItem[T]{T: val}, nil
}

func (dl *Single[T]) insertAfterItem(val T, it *singleItem[T]) error {
	n, err := dl.allocate(val)
	if err != nil {
		return err
	}
	n.next = it.next
	it.next = n
	if n.next == nil {
		dl.tail = n
	}
	dl.len++
	return nil
}

func (dl *Single[T]) removeAfterItem(prev *singleItem[T]) T {
	it := prev.next
	prev.next = it.next
	if dl.tail == it {
		dl.tail = prev
	}
	dl.len--
	val := it.T
	*it = singleItem[T]{}
	return val
}

// Front returns the value at the head of the list.
func (dl *Single[T]) Front() (T, error) {
	if dl.len == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return dl.sentinel.next.T, nil
}

// PushFront adds val to the head of the list.
func (dl *Single[T]) PushFront(val T) error {
	return dl.insertAfterItem(val, &dl.sentinel)
}

// Append adds val to the tail of the list.
func (dl *Single[T]) Append(val T) error {
	return dl.insertAfterItem(val, dl.tailItem())
}

// PopFront removes and returns the value at the head of the list.
func (dl *Single[T]) PopFront() (T, error) {
	if dl.len == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return dl.removeAfterItem(&dl.sentinel), nil
}

// Insert inserts val so that it occupies position pos. Position 0
// is the head and Len() is immediately after the tail.
func (dl *Single[T]) Insert(val T, pos int) error {
	if pos < 0 || pos > dl.len {
		return positionError("Insert", pos, dl.len)
	}
	if pos == dl.len {
		return dl.Append(val)
	}
	return dl.insertAfterItem(val, dl.itemBefore(pos))
}

func (dl *Single[T]) item(op string, pos int) (*singleItem[T], error) {
	if pos < 0 || pos >= dl.len {
		return nil, positionError(op, pos, dl.len)
	}
	return dl.itemBefore(pos).next, nil
}

// At returns the value at position pos.
func (dl *Single[T]) At(pos int) (T, error) {
	it, err := dl.item("At", pos)
	if err != nil {
		var zero T
		return zero, err
	}
	return it.T, nil
}

// Ref returns a reference to the value stored at position pos. The
// reference must not be used once that element has been removed.
func (dl *Single[T]) Ref(pos int) (*T, error) {
	it, err := dl.item("Ref", pos)
	if err != nil {
		return nil, err
	}
	return &it.T, nil
}

// Set replaces the value stored at position pos.
func (dl *Single[T]) Set(pos int, val T) error {
	it, err := dl.item("Set", pos)
	if err != nil {
		return err
	}
	it.T = val
	return nil
}

// Erase removes the element at position pos.
func (dl *Single[T]) Erase(pos int) error {
	if pos < 0 || pos >= dl.len {
		return positionError("Erase", pos, dl.len)
	}
	dl.removeAfterItem(dl.itemBefore(pos))
	return nil
}

// RemoveFunc removes the first element for which fn returns true and
// reports whether an element was removed.
func (dl *Single[T]) RemoveFunc(fn func(T) bool) bool {
	prev := &dl.sentinel
	for n := dl.sentinel.next; n != nil; n = n.next {
		if fn(n.T) {
			dl.removeAfterItem(prev)
			return true
		}
		prev = n
	}
	return false
}

// FindFunc returns the position of the first element for which fn
// returns true. It returns -1 and false if there is no such element.
func (dl *Single[T]) FindFunc(fn func(T) bool) (int, bool) {
	for i, v := range dl.All() {
		if fn(v) {
			return i, true
		}
	}
	return -1, false
}

// Find returns the position of the first element in l that is equal
// to val. It returns -1 and false if val is not present.
func Find[T comparable](l *Single[T], val T) (int, bool) {
	return l.FindFunc(func(v T) bool { return v == val })
}

// Clone returns a copy of the list that shares no elements with it.
// The copy has the same node limit as the original.
func (dl *Single[T]) Clone() (*Single[T], error) {
	return dl.cloneWith(dl.opts)
}

func (dl *Single[T]) cloneWith(opts options) (*Single[T], error) {
	c := &Single[T]{opts: opts}
	last := &c.sentinel
	for it := dl.sentinel.next; it != nil; it = it.next {
		if err := c.insertAfterItem(it.T, last); err != nil {
			c.Reset()
			return nil, err
		}
		last = last.next
	}
	return c, nil
}

// Assign replaces the contents of the list with a copy of other. The
// copy is made in full before the list is modified, so that if it fails
// the list is left unchanged. The receiver's node limit applies to
// the copy.
func (dl *Single[T]) Assign(other *Single[T]) error {
	if other == dl {
		return nil
	}
	tmp, err := other.cloneWith(dl.opts)
	if err != nil {
		return err
	}
	dl.swap(tmp)
	tmp.Reset()
	return nil
}

func (dl *Single[T]) swap(o *Single[T]) {
	dl.sentinel.next, o.sentinel.next = o.sentinel.next, dl.sentinel.next
	dl.tail, o.tail = o.tail, dl.tail
	dl.len, o.len = o.len, dl.len
}

// String returns the length of the list followed by each of its values.
func (dl *Single[T]) String() string {
	out := &strings.Builder{}
	fmt.Fprintf(out, "%d:", dl.len)
	for v := range dl.Forward() {
		fmt.Fprintf(out, " %v", v)
	}
	return out.String()
}
