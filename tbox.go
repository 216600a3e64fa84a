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

import "sort"

// TBox maps concept names to their definitions. Definitions may be acyclic
// or cyclic, cycles are handled by the blocking mechanism during expansion,
// no static unfolding is attempted.
type TBox struct {
	defs map[NamedConcept]Concept

	// lazily computed NNF of each definition and of its negation
	pos map[NamedConcept]Concept
	neg map[NamedConcept]Concept
}

// NewTBox returns a new empty TBox.
func NewTBox() *TBox {
	return &TBox{
		defs: make(map[NamedConcept]Concept),
		pos:  make(map[NamedConcept]Concept),
		neg:  make(map[NamedConcept]Concept),
	}
}

// Define adds the definition name ≡ def, replacing any previous definition
// for that name.
func (tbox *TBox) Define(name NamedConcept, def Concept) {
	tbox.defs[name] = def
	delete(tbox.pos, name)
	delete(tbox.neg, name)
}

// Definition returns the raw (not normalized) definition of name.
func (tbox *TBox) Definition(name NamedConcept) (Concept, bool) {
	if tbox == nil {
		return nil, false
	}
	def, has := tbox.defs[name]
	return def, has
}

// Unfold returns the NNF of the definition of name, if name is defined.
// The result is cached, unfolding the same name twice is cheap.
func (tbox *TBox) Unfold(name NamedConcept) (Concept, bool) {
	if tbox == nil {
		return nil, false
	}
	if cached, has := tbox.pos[name]; has {
		return cached, true
	}
	def, has := tbox.defs[name]
	if !has {
		return nil, false
	}
	res := NNF(def)
	tbox.pos[name] = res
	return res, true
}

// UnfoldNegated returns the NNF of the negated definition of name, used when
// ¬name(a) is asserted for a defined name.
func (tbox *TBox) UnfoldNegated(name NamedConcept) (Concept, bool) {
	if tbox == nil {
		return nil, false
	}
	if cached, has := tbox.neg[name]; has {
		return cached, true
	}
	def, has := tbox.defs[name]
	if !has {
		return nil, false
	}
	res := NNF(NewNegation(def))
	tbox.neg[name] = res
	return res, true
}

// Names returns the defined concept names in sorted order.
func (tbox *TBox) Names() []NamedConcept {
	if tbox == nil {
		return nil
	}
	res := make([]NamedConcept, 0, len(tbox.defs))
	for name := range tbox.defs {
		res = append(res, name)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// collectAtomics adds every concept name occurring in c to into.
func collectAtomics(c Concept, into map[NamedConcept]struct{}) {
	switch c := c.(type) {
	case NamedConcept:
		into[c] = struct{}{}
	case *Negation:
		collectAtomics(c.C, into)
	case *Conjunction:
		collectAtomics(c.C, into)
		collectAtomics(c.D, into)
	case *Disjunction:
		collectAtomics(c.C, into)
		collectAtomics(c.D, into)
	case *Existential:
		collectAtomics(c.C, into)
	case *Universal:
		collectAtomics(c.C, into)
	case *AtLeast:
		collectAtomics(c.C, into)
	case *AtMost:
		collectAtomics(c.C, into)
	case *Implication:
		collectAtomics(c.A, into)
		collectAtomics(c.B, into)
	}
}

// atomics adds every concept name occurring in the TBox, on either side of a
// definition, to into.
func (tbox *TBox) atomics(into map[NamedConcept]struct{}) {
	if tbox == nil {
		return
	}
	for name, def := range tbox.defs {
		into[name] = struct{}{}
		collectAtomics(def, into)
	}
}
