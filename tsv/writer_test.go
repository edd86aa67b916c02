// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package tsv_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/grailbio/pmquery/tsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	tw := tsv.NewWriter(&buf)
	tw.WriteUint32(17)
	require.NoError(t, tw.EndLine())
	tw.WriteUint32(19)
	tw.WriteString("10011")
	require.NoError(t, tw.EndLine())
	tw.WriteString("count")
	tw.WriteUint64(1 << 31)
	require.NoError(t, tw.EndLine())
	assert.Equal(t, "", buf.String(), "output before Flush")
	require.NoError(t, tw.Flush())
	assert.Equal(t, "17\n19\t10011\ncount\t2147483648\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriterError(t *testing.T) {
	tw := tsv.NewWriter(failWriter{})
	tw.WriteUint32(1)
	require.NoError(t, tw.EndLine())
	assert.EqualError(t, tw.Flush(), "broken pipe")
}
