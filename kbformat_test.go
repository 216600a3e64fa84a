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

const motherYAML = `
tbox:
  Woman: [and, Person, Female]
  Man: [and, Person, [not, Female]]
  Mother: [and, Woman, [exists, hasChild, Person]]
abox:
  - [hasChild, mary, tom]
  - [Woman, mary]
  - [Person, tom]
  - [Mother, mary]
`

func TestParseMotherKB(t *testing.T) {
	kb, err := ParseKB([]byte(motherYAML))
	require.NoError(t, err)
	require.Nil(t, kb.Premise)

	def, has := kb.TBox.Definition(NewNamedConcept("Woman"))
	require.True(t, has)
	assert.True(t, ConceptEquals(def,
		NewConjunction(NewNamedConcept("Person"), NewNamedConcept("Female"))))

	mary, has := kb.ABox.Lookup("mary")
	require.True(t, has)
	tom, has := kb.ABox.Lookup("tom")
	require.True(t, has)
	assert.True(t, kb.ABox.HasRole("hasChild", mary, tom))
	assert.True(t, kb.ABox.ContainsAssertion(NewNamedConcept("Mother"), "mary"))

	solver := NewSolver(kb.TBox)
	ok, model, err := solver.Consistent(kb.ABox)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, model.ContainsAssertion(NewNamedConcept("Female"), "mary"))
}

const childrenYAML = `
abox:
  - [hasChild, mary, ann]
  - [hasChild, mary, eva]
  - [hasChild, mary, joe]
  - [["<=", 2, [rule, hasChild, T]], mary]
`

func TestParseNumberRestrictionKB(t *testing.T) {
	kb, err := ParseKB([]byte(childrenYAML))
	require.NoError(t, err)
	assert.True(t, kb.ABox.ContainsAssertion(NewAtMost(2, "hasChild", Top), "mary"))

	// consistent without the unique-name assumption, inconsistent with it
	ok, _, err := NewSolver(kb.TBox).Consistent(kb.ABox)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _, err = NewSolver(kb.TBox).ConsistentWithObjAndT(kb.ABox)
	require.NoError(t, err)
	assert.False(t, ok)
}

const premiseYAML = `
tbox:
  GoodStudent: [or, Smart, Studious]
premise: [subsumes, [exists, attendedBy, [and, Smart, Studious]], [exists, attendedBy, GoodStudent]]
`

func TestParsePremiseKB(t *testing.T) {
	kb, err := ParseKB([]byte(premiseYAML))
	require.NoError(t, err)
	require.NotNil(t, kb.Premise)

	solver := NewSolver(kb.TBox)
	counterexamples, holds, err := solver.Subsumes(kb.ABox, kb.Premise)
	require.NoError(t, err)
	assert.True(t, holds)
	assert.Empty(t, counterexamples)
}

func TestParseInequality(t *testing.T) {
	kb, err := ParseKB([]byte(`
abox:
  - ["!=", ann, eva]
`))
	require.NoError(t, err)
	ann, _ := kb.ABox.Lookup("ann")
	eva, _ := kb.ABox.Lookup("eva")
	assert.True(t, kb.ABox.Distinguished(ann, eva))
	assert.True(t, kb.ABox.Distinguished(eva, ann))
}

func TestParseNaryDecomposesToBinary(t *testing.T) {
	kb, err := ParseKB([]byte(`
tbox:
  X: [and, A, B, C]
`))
	require.NoError(t, err)
	def, has := kb.TBox.Definition(NewNamedConcept("X"))
	require.True(t, has)
	want := NewConjunction(
		NewConjunction(NewNamedConcept("A"), NewNamedConcept("B")),
		NewNamedConcept("C"))
	assert.True(t, ConceptEquals(want, def))
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"unknown tag", `
tbox:
  A: [xor, B, C]
`},
		{"negative cardinality", `
abox:
  - [[">=", -1, [rule, r, T]], a]
`},
		{"cardinality not an integer", `
abox:
  - [[">=", many, [rule, r, T]], a]
`},
		{"top outside number restriction", `
tbox:
  A: [and, T, B]
`},
		{"subsumes below premise root", `
tbox:
  A: [subsumes, B, C]
`},
		{"rule outside number restriction", `
tbox:
  A: [rule, r, B]
`},
		{"premise without subsumes", `
premise: [and, A, B]
`},
		{"assertion arity", `
abox:
  - [Foo]
`},
		{"not arity", `
tbox:
  A: [not, B, C]
`},
		{"missing rule wrapper", `
abox:
  - [["<=", 2, [hasChild, T]], mary]
`},
		{"reserved tag as role", `
abox:
  - [and, mary, tom]
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseKB([]byte(tc.yaml))
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}
