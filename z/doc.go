// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z contains the literal and variable numbering shared by
// the aiger model and codecs.
package z
