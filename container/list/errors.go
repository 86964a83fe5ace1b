// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrEmpty is returned by operations that require at least one element.
	ErrEmpty = errors.New("list is empty")

	// ErrInvalidPosition is returned, wrapped in a PositionError, when
	// a position is outside of the range supported by an operation.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrOutOfMemory is returned when a new element cannot be allocated
	// without exceeding the list's node limit, see WithNodeLimit.
	ErrOutOfMemory = errors.New("out of memory")
)

// PositionError records the operation, position and list length for
// a position that is out of range.
type PositionError struct {
	Op  string
	Pos int
	Len int
}

func (pe *PositionError) Error() string {
	return fmt.Sprintf("list.%s: %v: %d, length %d", pe.Op, ErrInvalidPosition, pe.Pos, pe.Len)
}

// Unwrap returns ErrInvalidPosition.
func (pe *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

func positionError(op string, pos, n int) error {
	return &PositionError{Op: op, Pos: pos, Len: n}
}
