// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aiger implements aiger format version 1.9 ascii and binary
// readers and writers.
//
// An aiger object (*T) holds the literals of a sequential circuit
// exactly as numbered on disk: inputs, latches and and gates define
// variables, while outputs, bad states, constraints, justice and
// fairness properties refer to them.  Each element may carry a
// name, and the object keeps the trailing comment lines of a file.
//
// BadToOutputs rewrites bad state properties as plain outputs, for
// tools that predate aiger 1.9.
//
// Objects are not safe for concurrent use.
package aiger
