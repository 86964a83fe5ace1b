// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"cloudeng.io/errors"
	"cloudeng.io/linkedlist/container/list"
	"cloudeng.io/logging/ctxlog"
)

type stepper struct {
	ctx  context.Context
	out  io.Writer
	list *list.Single[int]
	errs errors.M
}

// step prints the description of a step, runs it and then prints the
// resulting list. Failures are recorded and do not prevent subsequent
// steps from running.
func (s *stepper) step(format string, args ...any) func(error) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(s.out, "%s\n", msg)
	return func(err error) {
		if err != nil {
			err = fmt.Errorf("%s: %w", msg, err)
			fmt.Fprintf(s.out, "error: %v\n", err)
			s.errs.Append(err)
		}
		fmt.Fprintf(s.out, "%v\n", s.list)
		ctxlog.Logger(s.ctx).Debug("step", "step", msg, "len", s.list.Len(), "error", err)
	}
}

func runDemo(ctx context.Context, out io.Writer, size int, seed int64) error {
	if size <= 0 {
		return fmt.Errorf("size must be positive: %v", size)
	}
	rnd := rand.New(rand.NewSource(seed))
	s := &stepper{ctx: ctx, out: out, list: list.NewSingle[int]()}

	done := s.step("creating a list of %d random integers", size)
	var err error
	for range size {
		if err = s.list.PushFront(rnd.Intn(100)); err != nil {
			break
		}
	}
	done(err)

	done = s.step("setting the value at the head to 42")
	ref, err := s.list.Ref(0)
	if err == nil {
		*ref = 42
	}
	done(err)

	done = s.step("setting the value at position %d to 24", size/2)
	done(s.list.Set(size/2, 24))

	done = s.step("erasing the value at position %d", 2*size/3)
	done(s.list.Erase(2 * size / 3))

	done = s.step("inserting 421 at position 0")
	done(s.list.Insert(421, 0))

	done = s.step("inserting 422 at position %d", size/3)
	done(s.list.Insert(422, size/3))

	done = s.step("inserting 423 at the last position")
	done(s.list.Insert(423, s.list.Len()))

	done = s.step("sorting the list")
	list.Sort(s.list)
	done(nil)

	done = s.step("releasing the list")
	s.list.Reset()
	done(nil)

	return s.errs.Err()
}

func runSort(ctx context.Context, out io.Writer, vals []int) error {
	sl := list.NewSingle[int]()
	for _, v := range vals {
		if err := sl.Append(v); err != nil {
			return err
		}
	}
	list.Sort(sl)
	ctxlog.Logger(ctx).Info("sorted", "len", sl.Len())
	fmt.Fprintf(out, "%v\n", sl)
	return nil
}

func runFind(ctx context.Context, out io.Writer, val int, vals []int) error {
	sl := list.NewSingle[int]()
	for _, v := range vals {
		if err := sl.Append(v); err != nil {
			return err
		}
	}
	idx, ok := list.Find(sl, val)
	ctxlog.Logger(ctx).Info("find", "value", val, "len", sl.Len(), "found", ok)
	if !ok {
		fmt.Fprintf(out, "%v: not found\n", val)
		return nil
	}
	fmt.Fprintf(out, "%v: %v\n", val, idx)
	return nil
}
