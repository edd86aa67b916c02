// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// The following enables go generate to generate the doc.go file.
//go:generate go run v.io/x/lib/cmdline/gendoc "--build-cmd=go install" --copyright-notice= . -help
package main

import (
	"github.com/grailbio/pmquery/bitset"
	"github.com/grailbio/pmquery/cmdutil"
	"github.com/grailbio/pmquery/errors"
	"github.com/grailbio/pmquery/query"
	"github.com/grailbio/pmquery/tsv"
	"v.io/x/lib/cmdline"
)

var (
	bitsFlag  bool
	countFlag bool
)

func newCmdRoot() *cmdline.Command {
	cmd := &cmdline.Command{
		Runner: cmdutil.RunnerFunc(runBuckets),
		Name:   "buckets",
		Short:  "List the buckets to examine for a partial-match query",
		Long: `
Command buckets prints the buckets of a multi-attribute hashed file that
must be examined to answer a partial-match query.

The query hash is a string of '0', '1' and '*' characters, most significant
bit first, with at most 31 characters. Each '*' is a bit left unconstrained
by the query. Buckets prints the known and unknown bit-strings, then one
bucket id per line for every assignment of values to the '*' bits.

For example, "buckets 1*0*1" prints buckets 17, 19, 25 and 27.
`,
		ArgsName: "<query-hash>",
		ArgsLong: "<query-hash> is a bit-string over '0', '1' and '*'.",
	}
	cmd.Flags.BoolVar(&bitsFlag, "bits", false, "Follow each bucket id with a tab and its bit-string.")
	cmd.Flags.BoolVar(&countFlag, "count", false, "Print only the number of buckets.")
	return cmd
}

func runBuckets(env *cmdline.Env, args []string) (err error) {
	if len(args) != 1 {
		return env.UsageErrorf("expected exactly one <query-hash>, got %d arguments", len(args))
	}
	h, err := query.Parse(args[0])
	if err != nil {
		return err
	}
	w := tsv.NewWriter(env.Stdout)
	defer errors.CleanUp(w.Flush, &err)
	w.WriteString("Known:   " + h.Known.String())
	if err = w.EndLine(); err != nil {
		return err
	}
	w.WriteString("Unknown: " + h.Unknown.String())
	if err = w.EndLine(); err != nil {
		return err
	}
	e := query.NewEnumerator(h)
	if countFlag {
		w.WriteUint64(e.Count())
		return w.EndLine()
	}
	return e.Each(func(b bitset.Bits) error {
		w.WriteUint32(b.Uint32())
		if bitsFlag {
			w.WriteString(b.String())
		}
		return w.EndLine()
	})
}

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(newCmdRoot())
}
