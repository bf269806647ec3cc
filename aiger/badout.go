// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

// DefaultBadName names the outputs made by BadToOutputs from unnamed
// bad state properties.
const DefaultBadName = "bad_state"

// BadToOutputs turns every bad state property of a into an output.
// For each bad state in order, an output with the same literal is
// appended after the existing outputs, named as the bad state or
// DefaultBadName.  Then all bad states are removed.  No literals are
// allocated.
//
// BadToOutputs returns the number of converted properties, or
// ErrNoBadStates if a has none, in which case a is unchanged.
func (a *T) BadToOutputs() (int, error) {
	n := len(a.Bad)
	if n == 0 {
		return 0, ErrNoBadStates
	}
	for i, m := range a.Bad {
		nm, ok := a.BadName(i)
		if !ok {
			nm = DefaultBadName
		}
		a.Outputs = append(a.Outputs, m)
		a.sym('o')[len(a.Outputs)-1] = nm
	}
	a.ClearBad()
	return n, nil
}
