// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

type options struct {
	nodeLimit int
}

// Option represents the options that can be passed to NewSingle.
type Option[T any] func(*options)

// WithNodeLimit sets the maximum number of elements that the list may
// allocate. Any operation that would exceed it fails with ErrOutOfMemory
// and leaves the list unchanged. A limit of zero or less means no limit.
func WithNodeLimit[T any](n int) Option[T] {
	return func(o *options) {
		o.nodeLimit = n
	}
}
