// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package tsv provides a buffered writer for line-oriented,
// tab-separated output such as bucket id listings.
package tsv
