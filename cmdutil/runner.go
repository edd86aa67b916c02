// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cmdutil provides utility routines for implementing command line
// tools with v.io/x/lib/cmdline.
package cmdutil

import (
	"sync"

	"github.com/grailbio/pmquery/log"
	"v.io/x/lib/cmdline"
	"v.io/x/lib/vlog"
)

var runnerOnce sync.Once

// RunnerFunc is an adapter that turns regular functions into cmdline.Runners.
type RunnerFunc func(*cmdline.Env, []string) error

// Run implements the cmdline.Runner interface method by calling f(env, args).
// It ensures that vlog is configured from flags, that package log writes
// through vlog, and that vlog is flushed at the end.
func (f RunnerFunc) Run(env *cmdline.Env, args []string) error {
	runnerOnce.Do(func() {
		vlog.ConfigureLibraryLoggerFromFlags()
		log.SetOutputter(VlogOutputter{})
	})
	err := f(env, args)
	vlog.FlushLog()
	return err
}
