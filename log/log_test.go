// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package log_test

import (
	"os"
	"testing"

	"github.com/grailbio/pmquery/log"
	"github.com/stretchr/testify/assert"
)

type testOutputter struct {
	level    log.Level
	messages map[log.Level][]string
}

func newTestOutputter(level log.Level) *testOutputter {
	return &testOutputter{level, make(map[log.Level][]string)}
}

func (t *testOutputter) Empty() bool {
	for _, m := range t.messages {
		if len(m) != 0 {
			return false
		}
	}
	return true
}

func (t *testOutputter) Next(level log.Level) string {
	if len(t.messages[level]) == 0 {
		return ""
	}
	var m string
	m, t.messages[level] = t.messages[level][0], t.messages[level][1:]
	return m
}

func (t *testOutputter) Level() log.Level {
	return t.level
}

func (t *testOutputter) Output(calldepth int, level log.Level, s string) error {
	t.messages[level] = append(t.messages[level], s)
	return nil
}

func TestLog(t *testing.T) {
	out := newTestOutputter(log.Info)
	defer log.SetOutputter(log.SetOutputter(out))
	log.Printf("query %q", "1*0*1")
	assert.Equal(t, `query "1*0*1"`, out.Next(log.Info))
	log.Error.Print(1, 2, 3)
	assert.Equal(t, "1 2 3", out.Next(log.Error))
	log.Debug.Printf("%d wildcards", 2)
	assert.Equal(t, "", out.Next(log.Debug))
	assert.True(t, out.Empty())

	out.level = log.Debug
	assert.True(t, log.At(log.Debug))
	log.Debug.Printf("%d wildcards", 2)
	assert.Equal(t, "2 wildcards", out.Next(log.Debug))
}

func TestLevelString(t *testing.T) {
	for level, want := range map[log.Level]string{
		log.Off:   "off",
		log.Error: "error",
		log.Info:  "info",
		log.Debug: "debug",
		3:         "debug3",
	} {
		assert.Equal(t, want, level.String())
	}
	assert.Panics(t, func() { _ = log.Level(-1).String() })
}

func Example() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0)
	log.Print("hello, world!")
	log.Error.Print("hello from error")
	log.Debug.Print("invisible")

	// Output:
	// hello, world!
	// hello from error
}
