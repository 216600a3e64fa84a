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

// NNF returns the negation normal form of c: negation applies only to
// concept names, implication is eliminated. Every concept entering an ABox
// passes through this rewrite, so structural equality on stored concepts is
// equality modulo the rules below:
//
//	¬⊤ → ⊥, ¬⊥ → ⊤
//	¬¬C → C
//	¬(C ⊓ D) → ¬C ⊔ ¬D, ¬(C ⊔ D) → ¬C ⊓ ¬D
//	¬∃r.C → ∀r.¬C, ¬∀r.C → ∃r.¬C
//	¬(≥ n r.C) → (≤ n−1 r.C) for n ≥ 1, ¬(≥ 0 r.C) → ⊥
//	¬(≤ n r.C) → (≥ n+1 r.C)
//	A ⇒ B → ¬A ⊔ B
//
// NNF is idempotent.
func NNF(c Concept) Concept {
	switch c := c.(type) {
	case TopConcept, BottomConcept, NamedConcept:
		return c
	case *Negation:
		return nnfNegated(c.C)
	case *Conjunction:
		return NewConjunction(NNF(c.C), NNF(c.D))
	case *Disjunction:
		return NewDisjunction(NNF(c.C), NNF(c.D))
	case *Existential:
		return NewExistential(c.R, NNF(c.C))
	case *Universal:
		return NewUniversal(c.R, NNF(c.C))
	case *AtLeast:
		return NewAtLeast(c.N, c.R, NNF(c.C))
	case *AtMost:
		return NewAtMost(c.N, c.R, NNF(c.C))
	case *Implication:
		return NewDisjunction(nnfNegated(c.A), NNF(c.B))
	default:
		// sealed interface, unreachable
		return c
	}
}

// nnfNegated returns the negation normal form of ¬c.
func nnfNegated(c Concept) Concept {
	switch c := c.(type) {
	case TopConcept:
		return Bottom
	case BottomConcept:
		return Top
	case NamedConcept:
		return NewNegation(c)
	case *Negation:
		return NNF(c.C)
	case *Conjunction:
		return NewDisjunction(nnfNegated(c.C), nnfNegated(c.D))
	case *Disjunction:
		return NewConjunction(nnfNegated(c.C), nnfNegated(c.D))
	case *Existential:
		return NewUniversal(c.R, nnfNegated(c.C))
	case *Universal:
		return NewExistential(c.R, nnfNegated(c.C))
	case *AtLeast:
		if c.N == 0 {
			// ≥ 0 r.C is trivially true, its negation is unsatisfiable
			return Bottom
		}
		return NewAtMost(c.N-1, c.R, NNF(c.C))
	case *AtMost:
		return NewAtLeast(c.N+1, c.R, NNF(c.C))
	case *Implication:
		// ¬(A ⇒ B) = A ⊓ ¬B
		return NewConjunction(NNF(c.A), nnfNegated(c.B))
	default:
		return NewNegation(c)
	}
}
