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

import "fmt"

//// Concepts ////

// Concept is the interface for all ALCQ concept expressions.
// Concepts are defined recursively, this is the general interface.
// The interface is sealed: only the types in this package implement it.
type Concept interface {
	fmt.Stringer
	isConcept()
}

// TopConcept is the top concept ⊤.
type TopConcept struct{}

// NewTopConcept returns a new TopConcept.
// Instead of creating it again and again all the time you should
// use the package-level value Top.
func NewTopConcept() TopConcept {
	return TopConcept{}
}

func (top TopConcept) isConcept() {}

func (top TopConcept) String() string {
	return "⊤"
}

// BottomConcept is the bottom concept ⊥.
type BottomConcept struct{}

// NewBottomConcept returns a new BottomConcept.
// Instead of creating it again and again all the time you should
// use the package-level value Bottom.
func NewBottomConcept() BottomConcept {
	return BottomConcept{}
}

func (bot BottomConcept) isConcept() {}

func (bot BottomConcept) String() string {
	return "⊥"
}

// Top is a constant concept that represents the top concept ⊤.
var Top TopConcept = NewTopConcept()

// Bottom is a constant concept that represents the bottom concept ⊥.
var Bottom BottomConcept = NewBottomConcept()

// NamedConcept is a concept from the set of concept names A ∈ N_C,
// identified by its name.
type NamedConcept string

// NewNamedConcept returns a new NamedConcept with the given name.
func NewNamedConcept(name string) NamedConcept {
	return NamedConcept(name)
}

func (name NamedConcept) isConcept() {}

func (name NamedConcept) String() string {
	return string(name)
}

// Role is a role r ∈ N_R, identified by its name. Roles are uninterpreted
// binary relation names, equality is by name.
type Role string

// NewRole returns a new Role with the given name.
func NewRole(name string) Role {
	return Role(name)
}

func (role Role) String() string {
	return string(role)
}

// Negation is a concept of the form ¬C.
type Negation struct {
	C Concept
}

// NewNegation returns a new negation ¬C.
func NewNegation(c Concept) *Negation {
	return &Negation{C: c}
}

func (neg *Negation) isConcept() {}

func (neg *Negation) String() string {
	return fmt.Sprintf("¬%v", neg.C)
}

// Conjunction is a concept of the form C ⊓ D.
type Conjunction struct {
	// C, D are the parts of the conjunction.
	C, D Concept
}

// NewConjunction returns a new conjunction given C and D.
func NewConjunction(c, d Concept) *Conjunction {
	return &Conjunction{C: c, D: d}
}

func (conjunction *Conjunction) isConcept() {}

func (conjunction *Conjunction) String() string {
	return fmt.Sprintf("(%v ⊓ %v)", conjunction.C, conjunction.D)
}

// Disjunction is a concept of the form C ⊔ D.
type Disjunction struct {
	// C, D are the parts of the disjunction.
	C, D Concept
}

// NewDisjunction returns a new disjunction given C and D.
func NewDisjunction(c, d Concept) *Disjunction {
	return &Disjunction{C: c, D: d}
}

func (disjunction *Disjunction) isConcept() {}

func (disjunction *Disjunction) String() string {
	return fmt.Sprintf("(%v ⊔ %v)", disjunction.C, disjunction.D)
}

// Existential is an existential restriction of the form ∃r.C.
type Existential struct {
	R Role
	C Concept
}

// NewExistential returns a new existential restriction of the form ∃r.C.
func NewExistential(r Role, c Concept) *Existential {
	return &Existential{R: r, C: c}
}

func (existential *Existential) isConcept() {}

func (existential *Existential) String() string {
	return fmt.Sprintf("∃ %v.%v", existential.R, existential.C)
}

// Universal is a universal restriction of the form ∀r.C.
type Universal struct {
	R Role
	C Concept
}

// NewUniversal returns a new universal restriction of the form ∀r.C.
func NewUniversal(r Role, c Concept) *Universal {
	return &Universal{R: r, C: c}
}

func (universal *Universal) isConcept() {}

func (universal *Universal) String() string {
	return fmt.Sprintf("∀ %v.%v", universal.R, universal.C)
}

// AtLeast is a qualified at-least restriction of the form ≥ n r.C.
type AtLeast struct {
	N uint
	R Role
	C Concept
}

// NewAtLeast returns a new qualified at-least restriction ≥ n r.C.
func NewAtLeast(n uint, r Role, c Concept) *AtLeast {
	return &AtLeast{N: n, R: r, C: c}
}

func (atLeast *AtLeast) isConcept() {}

func (atLeast *AtLeast) String() string {
	return fmt.Sprintf("(≥ %d %v.%v)", atLeast.N, atLeast.R, atLeast.C)
}

// AtMost is a qualified at-most restriction of the form ≤ n r.C.
type AtMost struct {
	N uint
	R Role
	C Concept
}

// NewAtMost returns a new qualified at-most restriction ≤ n r.C.
func NewAtMost(n uint, r Role, c Concept) *AtMost {
	return &AtMost{N: n, R: r, C: c}
}

func (atMost *AtMost) isConcept() {}

func (atMost *AtMost) String() string {
	return fmt.Sprintf("(≤ %d %v.%v)", atMost.N, atMost.R, atMost.C)
}

// Implication is a concept of the form A ⇒ B. It is sugar for ¬A ⊔ B and
// eliminated during normalization, it never appears inside an ABox.
type Implication struct {
	A, B Concept
}

// NewImplication returns a new implication A ⇒ B.
func NewImplication(a, b Concept) *Implication {
	return &Implication{A: a, B: b}
}

func (implication *Implication) isConcept() {}

func (implication *Implication) String() string {
	return fmt.Sprintf("(%v ⇒ %v)", implication.A, implication.B)
}

// ConceptKey returns the canonical form of a concept, used as a map key.
// Two concepts are structurally equal iff their keys are equal.
func ConceptKey(c Concept) string {
	return c.String()
}

// ConceptEquals tests structural equality of two concepts.
func ConceptEquals(c, d Concept) bool {
	return ConceptKey(c) == ConceptKey(d)
}

//// Individuals ////

// Individual identifies an individual, named or anonymous, by a unique id.
// Naming and generator provenance live in the ABox the individual belongs to.
type Individual uint

func (individual Individual) String() string {
	return fmt.Sprintf("x(%d)", uint(individual))
}

//// Assertions ////

// Assertion is the interface for the three assertion kinds an ABox holds.
type Assertion interface {
	fmt.Stringer
	isAssertion()
}

// ConceptAssertion is a concept assertion of the form C(a).
type ConceptAssertion struct {
	C Concept
	A string
}

func (ca ConceptAssertion) isAssertion() {}

func (ca ConceptAssertion) String() string {
	return fmt.Sprintf("%v(%s)", ca.C, ca.A)
}

// RoleAssertion is a role assertion of the form r(a, b).
type RoleAssertion struct {
	R    Role
	A, B string
}

func (ra RoleAssertion) isAssertion() {}

func (ra RoleAssertion) String() string {
	return fmt.Sprintf("%v(%s, %s)", ra.R, ra.A, ra.B)
}

// InequalityAssertion is an inequality a ≠ b. Inequality is symmetric.
type InequalityAssertion struct {
	A, B string
}

func (ia InequalityAssertion) isAssertion() {}

func (ia InequalityAssertion) String() string {
	return fmt.Sprintf("%s ≠ %s", ia.A, ia.B)
}
