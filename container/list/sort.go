// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import "cmp"

// Sort sorts the list into ascending order. The sort is stable.
func Sort[T cmp.Ordered](l *Single[T]) {
	l.SortFunc(cmp.Compare[T])
}

// SortFunc sorts the list into the order determined by compare, which
// must return a negative number when a < b, a positive number when
// a > b and zero otherwise. The sort is stable and rearranges the
// links between elements rather than copying values.
func (dl *Single[T]) SortFunc(compare func(a, b T) int) {
	if dl.len < 2 {
		return
	}
	head := dl.sentinel.next
	var tail *singleItem[T]
	// Bottom-up merge sort: merge adjacent runs of width elements,
	// doubling width on each pass.
	for width := 1; width < dl.len; width *= 2 {
		var merged singleItem[T]
		tail = &merged
		for rest := head; rest != nil; {
			left := rest
			right := split(left, width)
			rest = split(right, width)
			tail = merge(tail, left, right, compare)
		}
		head = merged.next
	}
	dl.sentinel.next = head
	dl.tail = tail
}

// split cuts the chain after n items and returns the remainder.
func split[T any](it *singleItem[T], n int) *singleItem[T] {
	for i := 1; it != nil && i < n; i++ {
		it = it.next
	}
	if it == nil {
		return nil
	}
	rest := it.next
	it.next = nil
	return rest
}

// merge links the ordered merge of a and b after last and returns the
// final item of the merged chain. Ties are taken from a.
func merge[T any](last, a, b *singleItem[T], compare func(a, b T) int) *singleItem[T] {
	for a != nil && b != nil {
		if compare(b.T, a.T) < 0 {
			last.next, b = b, b.next
		} else {
			last.next, a = a, a.next
		}
		last = last.next
	}
	if a != nil {
		last.next = a
	} else {
		last.next = b
	}
	for last.next != nil {
		last = last.next
	}
	return last
}
