// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/go-air/aigbad/aiger"
	"github.com/go-air/aigbad/z"
)

// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// Sizes gives the number of each kind of element RandAig creates.
type Sizes struct {
	Inputs, Latches, Ands                    int
	Outputs, Bad, Constraints, Justice, Fair int
}

// RandSizes picks sizes with at most n inputs, latches and and gates
// and a few properties of each kind.
func RandSizes(n int) Sizes {
	mu.Lock()
	defer mu.Unlock()
	return Sizes{
		Inputs:      rng.Intn(n + 1),
		Latches:     rng.Intn(n + 1),
		Ands:        rng.Intn(n + 1),
		Outputs:     rng.Intn(4),
		Bad:         rng.Intn(4),
		Constraints: rng.Intn(3),
		Justice:     rng.Intn(3),
		Fair:        rng.Intn(3)}
}

// RandAig generates a random well formed aiger object of sizes s.
// The result is numbered canonically.  About half the elements are
// named, and the object has a comment with probability 1/2.
func RandAig(s Sizes) *aiger.T {
	mu.Lock()
	defer mu.Unlock()
	a := aiger.Make(s.Ands)
	for i := 0; i < s.Inputs; i++ {
		a.AddInput(names("in", i)...)
	}
	for i := 0; i < s.Latches; i++ {
		var reset z.Lit
		switch rng.Intn(3) {
		case 0:
			reset = z.LitFalse
		case 1:
			reset = z.LitTrue
		default:
			reset = aiger.Uninitialized
		}
		if _, err := a.AddLatch(z.LitFalse, reset, names("latch", i)...); err != nil {
			panic(err)
		}
	}
	for i := 0; i < s.Ands; i++ {
		if _, err := a.AddAnd(randLit(a), randLit(a)); err != nil {
			panic(err)
		}
	}
	for i := 0; i < s.Latches; i++ {
		if err := a.SetNext(i, randLit(a)); err != nil {
			panic(err)
		}
	}
	add := func(f func(z.Lit, ...string) error, n int, pfx string) {
		for i := 0; i < n; i++ {
			if err := f(randLit(a), names(pfx, i)...); err != nil {
				panic(err)
			}
		}
	}
	add(a.AddOutput, s.Outputs, "out")
	add(a.AddBad, s.Bad, "bad")
	add(a.AddConstraint, s.Constraints, "constraint")
	for i := 0; i < s.Justice; i++ {
		if err := a.AddJustice(randLits(a, 1+rng.Intn(3)), names("justice", i)...); err != nil {
			panic(err)
		}
	}
	add(a.AddFair, s.Fair, "fair")
	if rng.Intn(2) == 0 {
		a.AddComment(fmt.Sprintf("random aiger seed-%d\nsizes %+v", rng.Int63(), s))
	}
	return a
}

// RandLits returns n random literals over the variables of a.
func RandLits(a *aiger.T, n int) []z.Lit {
	mu.Lock()
	defer mu.Unlock()
	return randLits(a, n)
}

func randLits(a *aiger.T, n int) []z.Lit {
	ms := make([]z.Lit, n)
	for i := range ms {
		ms[i] = randLit(a)
	}
	return ms
}

func randLit(a *aiger.T) z.Lit {
	return z.Lit(rng.Intn(2 * (int(a.MaxVar()) + 1)))
}

func names(pfx string, i int) []string {
	if rng.Intn(2) == 0 {
		return nil
	}
	return []string{fmt.Sprintf("%s[%d]", pfx, i)}
}
