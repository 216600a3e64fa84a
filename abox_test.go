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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConceptSetSubset(t *testing.T) {
	a := NewNamedConcept("A")
	b := NewNamedConcept("B")
	small := NewConceptSet(2)
	small.Add(a)
	big := NewConceptSet(2)
	big.Add(a)
	big.Add(b)
	assert.True(t, small.IsSubset(big))
	assert.False(t, big.IsSubset(small))
	assert.True(t, small.IsSubset(small))
	assert.False(t, small.Equals(big))

	// adding twice does not change the set
	assert.False(t, big.Add(b))
	assert.Equal(t, 2, big.Len())
}

func TestRelationRename(t *testing.T) {
	rel := NewRelation(4)
	rel.Add(1, 2)
	rel.Add(2, 3)
	rel.Add(4, 2)
	rel.rename(2, 9)
	assert.True(t, rel.Contains(1, 9))
	assert.True(t, rel.Contains(9, 3))
	assert.True(t, rel.Contains(4, 9))
	assert.False(t, rel.Contains(1, 2))
	assert.False(t, rel.Contains(2, 3))
	assert.Equal(t, []Individual{9}, rel.Successors(1))
	assert.Equal(t, []Individual{1, 4}, rel.Predecessors(9))
}

func TestInequalitySymmetric(t *testing.T) {
	ab := NewABox()
	a := ab.Individual("a")
	b := ab.Individual("b")
	ab.AddDistinct(a, b)
	assert.True(t, ab.Distinguished(a, b))
	assert.True(t, ab.Distinguished(b, a))
	assert.False(t, ab.Distinguished(a, a))
	assert.False(t, ab.HasClash())
}

func TestSelfInequalityIsClash(t *testing.T) {
	ab := NewABox()
	a := ab.Individual("a")
	ab.AddDistinct(a, a)
	assert.True(t, ab.HasClash())
}

func TestAtomicClash(t *testing.T) {
	ab := NewABox()
	a := ab.Individual("a")
	ab.AddConcept(NewNamedConcept("A"), a)
	assert.False(t, ab.HasClash())
	ab.AddConcept(NewNegation(NewNamedConcept("A")), a)
	assert.True(t, ab.HasClash())

	bottom := NewABox()
	ab2 := bottom.Individual("a")
	bottom.AddConcept(Bottom, ab2)
	assert.True(t, bottom.HasClash())
}

func TestMergeRewritesAssertions(t *testing.T) {
	ab := NewABox()
	a := ab.Individual("a")
	y := ab.Individual("y")
	x := ab.Individual("x")
	b := ab.Individual("b")
	z := ab.Individual("z")
	ab.AddRole("r", a, y)
	ab.AddRole("r", y, b)
	ab.AddConcept(NewNamedConcept("C"), y)
	ab.AddDistinct(y, z)

	require.True(t, ab.Merge(y, x))
	assert.True(t, ab.HasRole("r", a, x))
	assert.True(t, ab.HasRole("r", x, b))
	assert.False(t, ab.HasRole("r", a, y))
	assert.True(t, ab.satisfies(x, NewNamedConcept("C")))
	assert.True(t, ab.Distinguished(x, z))
	assert.False(t, ab.Distinguished(y, z))

	// the merged name keeps resolving to the survivor
	resolved, has := ab.Lookup("y")
	require.True(t, has)
	assert.Equal(t, x, resolved)
}

func TestMergeDistinctIndividualsFails(t *testing.T) {
	ab := NewABox()
	a := ab.Individual("a")
	b := ab.Individual("b")
	ab.AddDistinct(a, b)
	assert.False(t, ab.Merge(a, b))
}

func TestMergeNamedPrecedence(t *testing.T) {
	ab := NewABox()
	mary := ab.Individual("mary")
	anon := ab.newAnonymous(mary, NewExistential("hasChild", Top))
	ab.AddRole("hasChild", mary, anon)
	ab.AddConcept(NewNamedConcept("Person"), anon)

	// merging the named individual into the anonymous one is flipped
	require.True(t, ab.Merge(mary, anon))
	resolved, has := ab.Lookup("mary")
	require.True(t, has)
	assert.Equal(t, mary, resolved)
	assert.False(t, ab.IsAnonymous(resolved))
	assert.True(t, ab.satisfies(mary, NewNamedConcept("Person")))
	assert.True(t, ab.HasRole("hasChild", mary, mary))
}

func TestCloneIsIndependent(t *testing.T) {
	ab := NewABox()
	a := ab.Individual("a")
	b := ab.Individual("b")
	ab.AddConcept(NewNamedConcept("A"), a)
	ab.AddRole("r", a, b)

	clone := ab.Clone()
	clone.AddConcept(NewNamedConcept("B"), a)
	clone.AddRole("r", b, a)
	clone.AddDistinct(a, b)

	assert.False(t, ab.satisfies(a, NewNamedConcept("B")))
	assert.False(t, ab.HasRole("r", b, a))
	assert.False(t, ab.Distinguished(a, b))
	assert.True(t, clone.satisfies(a, NewNamedConcept("A")))

	// the clone continues the original's id sequence, so both hand out the
	// same next fresh id, one past every individual they share
	fresh := clone.FreshIndividual()
	also := ab.FreshIndividual()
	assert.Equal(t, fresh, also)
}

func TestSubsetBlocking(t *testing.T) {
	ab := NewABox()
	root := ab.Individual("root")
	ex := NewExistential("r", NewNamedConcept("A"))
	ab.AddConcept(NewNamedConcept("A"), root)
	ab.AddConcept(ex, root)

	child := ab.newAnonymous(root, ex)
	ab.AddRole("r", root, child)
	ab.AddConcept(NewNamedConcept("A"), child)

	// labels(child) = {A} ⊆ labels(root): blocked
	assert.True(t, ab.blocked(child))
	// named individuals are never blocked
	assert.False(t, ab.blocked(root))

	// a label addition on the child lifts the block
	ab.AddConcept(NewNamedConcept("B"), child)
	assert.False(t, ab.blocked(child))

	// and a matching addition on the ancestor restores it
	ab.AddConcept(NewNamedConcept("B"), root)
	assert.True(t, ab.blocked(child))
}

func TestIndirectBlocking(t *testing.T) {
	ab := NewABox()
	root := ab.Individual("root")
	ex := NewExistential("r", NewNamedConcept("A"))
	ab.AddConcept(NewNamedConcept("A"), root)

	blocked := ab.newAnonymous(root, ex)
	ab.AddRole("r", root, blocked)
	ab.AddConcept(NewNamedConcept("A"), blocked)

	below := ab.newAnonymous(blocked, ex)
	ab.AddRole("r", blocked, below)
	ab.AddConcept(NewNamedConcept("A"), below)
	ab.AddConcept(NewNamedConcept("B"), below)

	// below's own labels are no subset of an ancestor's, but its parent is
	// blocked, so below is blocked too
	assert.True(t, ab.blocked(blocked))
	assert.True(t, ab.blocked(below))
}

func TestAssertUniqueNames(t *testing.T) {
	ab := NewABox()
	a := ab.Individual("a")
	b := ab.Individual("b")
	c := ab.Individual("c")
	anon := ab.newAnonymous(a, NewExistential("r", Top))
	ab.AssertUniqueNames()
	assert.True(t, ab.Distinguished(a, b))
	assert.True(t, ab.Distinguished(b, c))
	assert.True(t, ab.Distinguished(a, c))
	assert.False(t, ab.Distinguished(a, anon))
}
