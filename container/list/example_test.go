// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list_test

import (
	"errors"
	"fmt"

	"cloudeng.io/linkedlist/container/list"
)

func ExampleSingle() {
	sl := list.NewSingle[int]()
	for _, v := range []int{3, 2, 1} {
		_ = sl.PushFront(v)
	}
	fmt.Println(sl)
	_ = sl.Insert(9, 1)
	fmt.Println(sl)
	_ = sl.Erase(0)
	fmt.Println(sl)
	if idx, ok := list.Find(sl, 2); ok {
		fmt.Println("found 2 at", idx)
	}
	_, err := sl.At(10)
	fmt.Println(errors.Is(err, list.ErrInvalidPosition))
	list.Sort(sl)
	fmt.Println(sl)
	// Output:
	// 3: 1 2 3
	// 4: 1 9 2 3
	// 3: 9 2 3
	// found 2 at 1
	// true
	// 3: 2 3 9
}

func ExampleSingle_Assign() {
	a := list.NewSingle[string]()
	_ = a.Append("x")
	_ = a.Append("y")
	b := list.NewSingle(list.WithNodeLimit[string](1))
	_ = b.Append("z")
	if err := b.Assign(a); err != nil {
		fmt.Println(err)
	}
	fmt.Println(b)
	// Output:
	// out of memory
	// 1: z
}
