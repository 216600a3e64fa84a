// The MIT License (MIT)
//
// Copyright (c) 2026 The alcq authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package alcq

import (
	"fmt"
	"math/rand"
)

// RandomALCQBuilder generates random concepts and ABoxes over a fixed
// signature. Used by the normalization property tests and the termination
// smoke tests; all randomness comes from the *rand.Rand handed in, so runs
// are reproducible from a seed.
type RandomALCQBuilder struct {
	NumConceptNames uint
	NumRoles        uint
	NumIndividuals  uint
	// MaxCardinality bounds the n of generated ≥/≤ restrictions.
	MaxCardinality uint
}

func (this *RandomALCQBuilder) randomName(rng *rand.Rand) NamedConcept {
	return NamedConcept(fmt.Sprintf("A%d", rng.Intn(int(this.NumConceptNames))))
}

func (this *RandomALCQBuilder) randomRole(rng *rand.Rand) Role {
	return Role(fmt.Sprintf("r%d", rng.Intn(int(this.NumRoles))))
}

// GenerateConcept returns a random concept of at most the given depth.
// At depth 0 only atomic concepts (possibly negated) are produced.
func (this *RandomALCQBuilder) GenerateConcept(rng *rand.Rand, depth uint) Concept {
	if depth == 0 {
		if rng.Intn(2) == 0 {
			return this.randomName(rng)
		}
		return NewNegation(this.randomName(rng))
	}
	switch rng.Intn(8) {
	case 0:
		return NewNegation(this.GenerateConcept(rng, depth-1))
	case 1:
		return NewConjunction(this.GenerateConcept(rng, depth-1), this.GenerateConcept(rng, depth-1))
	case 2:
		return NewDisjunction(this.GenerateConcept(rng, depth-1), this.GenerateConcept(rng, depth-1))
	case 3:
		return NewExistential(this.randomRole(rng), this.GenerateConcept(rng, depth-1))
	case 4:
		return NewUniversal(this.randomRole(rng), this.GenerateConcept(rng, depth-1))
	case 5:
		n := uint(rng.Intn(int(this.MaxCardinality + 1)))
		return NewAtLeast(n, this.randomRole(rng), this.GenerateConcept(rng, depth-1))
	case 6:
		n := uint(rng.Intn(int(this.MaxCardinality + 1)))
		return NewAtMost(n, this.randomRole(rng), this.GenerateConcept(rng, depth-1))
	default:
		return NewImplication(this.GenerateConcept(rng, depth-1), this.GenerateConcept(rng, depth-1))
	}
}

// GenerateABox returns a random ABox with the given number of concept and
// role assertions over the builder's individuals.
func (this *RandomALCQBuilder) GenerateABox(rng *rand.Rand, numConceptAssertions, numRoleAssertions, maxDepth uint) *ABox {
	ab := NewABox()
	individual := func() Individual {
		return ab.Individual(fmt.Sprintf("i%d", rng.Intn(int(this.NumIndividuals))))
	}
	var i uint
	for ; i < numConceptAssertions; i++ {
		ab.AddConcept(this.GenerateConcept(rng, uint(rng.Intn(int(maxDepth+1)))), individual())
	}
	i = 0
	for ; i < numRoleAssertions; i++ {
		ab.AddRole(this.randomRole(rng), individual(), individual())
	}
	return ab
}
