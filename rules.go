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

import "go.uber.org/zap"

// Completion rules. Rules apply at fixed priorities: deterministic (⊓, ∀,
// unfold) first, then generative (∃, ≥), then branching (⊔, ≤ and the
// optional atomic-decision injection). Each apply function fires at most one
// rule instance and reports whether the ABox changed, so the driver can
// check for a clash after every additive step. A rule is applicable only
// when its conclusion is not already present.

// applyDeterministic fires one instance of the ⊓, ∀ or unfolding rule.
func (s *Solver) applyDeterministic(ab *ABox) bool {
	return s.applyConjunction(ab) || s.applyUniversal(ab) || s.applyUnfold(ab)
}

// applyGenerative fires one instance of the ∃ or ≥ rule.
func (s *Solver) applyGenerative(ab *ABox) bool {
	return s.applyExistential(ab) || s.applyAtLeast(ab)
}

// ⊓ rule: (C ⊓ D)(a) adds C(a) and D(a).
func (s *Solver) applyConjunction(ab *ABox) bool {
	for _, a := range ab.Individuals() {
		set, has := ab.labels[a]
		if !has {
			continue
		}
		for _, c := range set.Concepts() {
			conj, ok := c.(*Conjunction)
			if !ok {
				continue
			}
			if set.Contains(conj.C) && set.Contains(conj.D) {
				continue
			}
			set.Add(conj.C)
			set.Add(conj.D)
			s.logger.Debug("rule fired", zap.String("rule", "⊓"),
				zap.String("individual", ab.NameOf(a)), zap.Stringer("concept", conj))
			return true
		}
	}
	return false
}

// ∀ rule: ∀r.C(a) and r(a, b) add C(b).
func (s *Solver) applyUniversal(ab *ABox) bool {
	for _, a := range ab.Individuals() {
		set, has := ab.labels[a]
		if !has {
			continue
		}
		for _, c := range set.Concepts() {
			all, ok := c.(*Universal)
			if !ok {
				continue
			}
			for _, b := range ab.Successors(all.R, a) {
				if ab.satisfies(b, all.C) {
					continue
				}
				ab.AddConcept(all.C, b)
				s.logger.Debug("rule fired", zap.String("rule", "∀"),
					zap.String("individual", ab.NameOf(b)), zap.Stringer("concept", all))
				return true
			}
		}
	}
	return false
}

// Unfolding rule: N(a) for a defined name N adds nnf(def(N))(a), ¬N(a) adds
// nnf(¬def(N))(a). Unfolding is lazy and does not fire on blocked
// individuals, which keeps cyclic TBoxes safe together with blocking.
func (s *Solver) applyUnfold(ab *ABox) bool {
	for _, a := range ab.Individuals() {
		set, has := ab.labels[a]
		if !has {
			continue
		}
		if ab.blocked(a) {
			continue
		}
		for _, c := range set.Concepts() {
			var unfolded Concept
			var defined bool
			switch c := c.(type) {
			case NamedConcept:
				unfolded, defined = s.tbox.Unfold(c)
			case *Negation:
				if name, ok := c.C.(NamedConcept); ok {
					unfolded, defined = s.tbox.UnfoldNegated(name)
				}
			}
			if !defined || set.Contains(unfolded) {
				continue
			}
			set.Add(unfolded)
			s.logger.Debug("rule fired", zap.String("rule", "unfold"),
				zap.String("individual", ab.NameOf(a)), zap.Stringer("concept", c))
			return true
		}
	}
	return false
}

// ∃ rule: ∃r.C(a) with no r-successor of a satisfying C creates a fresh
// anonymous b with r(a, b) and C(b). An existing conforming successor is
// reused, evaluated against the current state at each firing attempt.
// Blocked individuals acquire no successors.
func (s *Solver) applyExistential(ab *ABox) bool {
	for _, a := range ab.Individuals() {
		set, has := ab.labels[a]
		if !has {
			continue
		}
		if ab.blocked(a) {
			continue
		}
		for _, c := range set.Concepts() {
			ex, ok := c.(*Existential)
			if !ok {
				continue
			}
			if len(ab.successorsSatisfying(ex.R, a, ex.C)) > 0 {
				continue
			}
			b := ab.newAnonymous(a, ex)
			ab.AddRole(ex.R, a, b)
			if _, isTop := ex.C.(TopConcept); !isTop {
				ab.AddConcept(ex.C, b)
			}
			s.logger.Debug("rule fired", zap.String("rule", "∃"),
				zap.String("individual", ab.NameOf(a)), zap.Stringer("concept", ex),
				zap.String("successor", ab.NameOf(b)))
			return true
		}
	}
	return false
}

// ≥ rule: (≥ n r.C)(a) with fewer than n pairwise distinguished r-successors
// satisfying C creates fresh anonymous individuals until n is reached, each
// distinguished from the other fresh ones and from the existing
// distinguished successors.
func (s *Solver) applyAtLeast(ab *ABox) bool {
	for _, a := range ab.Individuals() {
		set, has := ab.labels[a]
		if !has {
			continue
		}
		if ab.blocked(a) {
			continue
		}
		for _, c := range set.Concepts() {
			ge, ok := c.(*AtLeast)
			if !ok || ge.N == 0 {
				continue
			}
			clique := ab.maxDistinguished(ab.successorsSatisfying(ge.R, a, ge.C))
			if uint(len(clique)) >= ge.N {
				continue
			}
			fresh := make([]Individual, 0, ge.N-uint(len(clique)))
			for uint(len(clique))+uint(len(fresh)) < ge.N {
				b := ab.newAnonymous(a, ge)
				ab.AddRole(ge.R, a, b)
				if _, isTop := ge.C.(TopConcept); !isTop {
					ab.AddConcept(ge.C, b)
				}
				for _, other := range clique {
					ab.AddDistinct(b, other)
				}
				for _, other := range fresh {
					ab.AddDistinct(b, other)
				}
				fresh = append(fresh, b)
			}
			s.logger.Debug("rule fired", zap.String("rule", "≥"),
				zap.String("individual", ab.NameOf(a)), zap.Stringer("concept", ge),
				zap.Int("created", len(fresh)))
			return true
		}
	}
	return false
}

// injectDecisions realizes the with_t mode: for every individual o and every
// atomic concept A of the problem signature on which o is undecided, assert
// (A ⊔ ¬A)(o). The ⊔ rule then forces the decision.
func (s *Solver) injectDecisions(ab *ABox) bool {
	if !s.withT {
		return false
	}
	for _, o := range ab.Individuals() {
		set := ab.Labels(o)
		for _, atom := range s.atomics {
			if set.Contains(atom) || set.Contains(NewNegation(atom)) {
				continue
			}
			decision := NewDisjunction(atom, NewNegation(atom))
			if set.Contains(decision) {
				continue
			}
			set.Add(decision)
			s.logger.Debug("decision injected",
				zap.String("individual", ab.NameOf(o)), zap.Stringer("concept", decision))
			return true
		}
	}
	return false
}

// findBranch locates the next branching point and returns its alternatives.
// Each alternative mutates the clone it is handed and reports false when it
// collapses immediately (a merge of individuals asserted distinct).
//
// ⊔ rule: (C ⊔ D)(a) with neither disjunct asserted branches on C(a) and
// D(a). ≤ rule: (≤ n r.C)(a) with more than n conforming successors and at
// least one pair not asserted distinct branches over merging each such pair.
func (s *Solver) findBranch(ab *ABox) (string, []func(*ABox) bool) {
	for _, a := range ab.Individuals() {
		set, has := ab.labels[a]
		if !has {
			continue
		}
		for _, c := range set.Concepts() {
			or, ok := c.(*Disjunction)
			if !ok {
				continue
			}
			if set.Contains(or.C) || set.Contains(or.D) {
				continue
			}
			a, or := a, or
			return "⊔", []func(*ABox) bool{
				func(child *ABox) bool { child.Labels(a).Add(or.C); return true },
				func(child *ABox) bool { child.Labels(a).Add(or.D); return true },
			}
		}
	}
	for _, a := range ab.Individuals() {
		set, has := ab.labels[a]
		if !has {
			continue
		}
		for _, c := range set.Concepts() {
			le, ok := c.(*AtMost)
			if !ok {
				continue
			}
			cands := ab.successorsSatisfying(le.R, a, le.C)
			if uint(len(cands)) <= le.N {
				continue
			}
			var alts []func(*ABox) bool
			for i := 0; i < len(cands); i++ {
				for j := i + 1; j < len(cands); j++ {
					if ab.Distinguished(cands[i], cands[j]) {
						continue
					}
					y, x := cands[i], cands[j]
					alts = append(alts, func(child *ABox) bool { return child.Merge(y, x) })
				}
			}
			if len(alts) > 0 {
				return "≤", alts
			}
		}
	}
	return "", nil
}
