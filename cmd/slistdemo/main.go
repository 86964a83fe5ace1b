// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command slistdemo exercises the singly linked list in
// cloudeng.io/linkedlist/container/list.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const commands = `name: slistdemo
summary: exercise a singly linked list
commands:
  - name: demo
    summary: build a list of random values and modify it one step at a time, printing the list after every step
  - name: sort
    summary: sort the supplied integers into ascending order
    arguments:
      - <value>
      - ...
  - name: find
    summary: print the position of the first occurrence of value amongst the supplied integers
    arguments:
      - <value>
      - <list-value>
      - ...
`

type demoFlags struct {
	cmdutil.LoggingFlags
	Size int   `subcmd:"size,10,number of random values to start with"`
	Seed int64 `subcmd:"seed,1,seed for the random number generator"`
}

type listFlags struct {
	cmdutil.LoggingFlags
}

var cmdSet = subcmd.MustFromYAML(commands)

func newFlagSet(flags any) *subcmd.FlagSet {
	fs := subcmd.NewFlagSet()
	fs.MustRegisterFlagStruct(flags, nil, nil)
	return fs
}

func init() {
	cmdSet.Set("demo").MustRunnerAndFlags(demoCmd, newFlagSet(&demoFlags{}))
	cmdSet.Set("sort").MustRunnerAndFlags(sortCmd, newFlagSet(&listFlags{}))
	cmdSet.Set("find").MustRunnerAndFlags(findCmd, newFlagSet(&listFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

// withLogger configures the logger specified by lf and stores it
// in the returned context. The returned function closes any log file.
func withLogger(ctx context.Context, lf *cmdutil.LoggingFlags) (context.Context, func() error, error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), logger.Close, nil
}

func demoCmd(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*demoFlags)
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	return runDemo(ctx, os.Stdout, fv.Size, fv.Seed)
}

func sortCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*listFlags)
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	vals, err := parseInts(args)
	if err != nil {
		return err
	}
	return runSort(ctx, os.Stdout, vals)
}

func findCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*listFlags)
	ctx, closer, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	vals, err := parseInts(args)
	if err != nil {
		return err
	}
	return runFind(ctx, os.Stdout, vals[0], vals[1:])
}

func parseInts(args []string) ([]int, error) {
	vals := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not an integer", i, a)
		}
		vals[i] = v
	}
	return vals, nil
}
