// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmdutil

import (
	"github.com/grailbio/pmquery/log"
	"v.io/x/lib/vlog"
)

// VlogOutputter implements log.Outputter backed by vlog. Debug
// output is enabled by -v=1 or higher.
type VlogOutputter struct{}

// Level implements log.Outputter.
func (VlogOutputter) Level() log.Level {
	if vlog.V(1) {
		return log.Debug
	}
	return log.Info
}

// Output implements log.Outputter.
func (VlogOutputter) Output(calldepth int, level log.Level, s string) error {
	// In vlog, 0 depth means that the caller's file/line will be used,
	// whereas in package log that is depth 1.
	switch level {
	case log.Off:
	case log.Error:
		vlog.ErrorDepth(calldepth, s)
	case log.Info:
		vlog.InfoDepth(calldepth, s)
	default:
		vlog.VI(vlog.Level(level)).InfoDepth(calldepth, s)
	}
	return nil
}
