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
	"sort"

	"go.uber.org/zap"
)

// Solver decides ABox consistency under a TBox by tableau expansion: drive
// the completion rules to saturation, branch on disjunctions and
// number-restriction merges, abandon clashed branches by restoring the
// pre-branch state. The engine is single-threaded and non-suspending; a
// Solver must not be shared between goroutines.
type Solver struct {
	tbox   *TBox
	logger *zap.Logger

	withT      bool
	collectAll bool
	atomics    []NamedConcept

	models   []*ABox
	branches uint
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithLogger sets the logger the solver traces rule firings, branching and
// clashes on, at debug level. The default is a no-op logger.
func WithLogger(logger *zap.Logger) SolverOption {
	return func(s *Solver) {
		s.logger = logger
	}
}

// NewSolver returns a new Solver for the given TBox. A nil TBox is treated
// as empty.
func NewSolver(tbox *TBox, options ...SolverOption) *Solver {
	res := &Solver{
		tbox:   tbox,
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(res)
	}
	return res
}

// Premise is a subsumption premise: Sub ⊑ Super holds iff an instance of
// Sub ⊓ ¬Super cannot exist under the TBox.
type Premise struct {
	Sub, Super Concept
}

// NewPremise returns a new subsumption premise Sub ⊑ Super.
func NewPremise(sub, super Concept) *Premise {
	return &Premise{Sub: sub, Super: super}
}

func (premise *Premise) String() string {
	return premise.Sub.String() + " ⊑ " + premise.Super.String()
}

// Branches returns the number of branch alternatives generated at the branch
// points reached by the last call to one of the decision operations. Every
// alternative of a branch point is counted, including those left unexplored
// once a single requested model is found.
func (s *Solver) Branches() uint {
	return s.branches
}

// Consistent reports whether the ABox is consistent under the solver's TBox.
// On success it also returns a witness: a clash-free saturated ABox
// extending the input (one of possibly many). The input ABox is not
// modified. The only error is malformed input.
func (s *Solver) Consistent(ab *ABox) (bool, *ABox, error) {
	if err := s.prepare(ab, nil, false, false); err != nil {
		return false, nil, err
	}
	s.explore(ab.Clone())
	if len(s.models) > 0 {
		return true, s.models[0], nil
	}
	return false, nil, nil
}

// ConsistentWithT decides consistency while forcing a decision on every
// atomic concept of the problem signature for every individual, by
// injecting (A ⊔ ¬A)(o) assertions. It explores all branches and returns
// every clash-free saturated ABox found, producing more complete models at
// the cost of more branching.
func (s *Solver) ConsistentWithT(ab *ABox) (bool, []*ABox, error) {
	if err := s.prepare(ab, nil, true, true); err != nil {
		return false, nil, err
	}
	s.explore(ab.Clone())
	return len(s.models) > 0, s.models, nil
}

// ConsistentWithObjAndT behaves like ConsistentWithT and additionally
// asserts pairwise inequality on all named individuals, the unique-name
// assumption.
func (s *Solver) ConsistentWithObjAndT(ab *ABox) (bool, []*ABox, error) {
	if err := s.prepare(ab, nil, true, true); err != nil {
		return false, nil, err
	}
	work := ab.Clone()
	work.AssertUniqueNames()
	s.explore(work)
	return len(s.models) > 0, s.models, nil
}

// Subsumes decides the premise Sub ⊑ Super over the given ABox: a fresh
// individual x is asserted to be Sub and ¬Super, and the premise holds iff
// the extended ABox is inconsistent. The returned slice holds the clash-free
// saturated ABoxes encountered, i.e. counterexample models; it is empty
// exactly when the premise holds.
func (s *Solver) Subsumes(ab *ABox, premise *Premise) ([]*ABox, bool, error) {
	if premise == nil {
		return nil, false, malformedf(premise, "nil premise")
	}
	if err := s.prepare(ab, premise, false, true); err != nil {
		return nil, false, err
	}
	work := ab.Clone()
	x := work.FreshIndividual()
	work.AddConcept(premise.Sub, x)
	work.AddConcept(NewNegation(premise.Super), x)
	s.explore(work)
	return s.models, len(s.models) == 0, nil
}

// prepare validates the inputs and resets the per-run state.
func (s *Solver) prepare(ab *ABox, premise *Premise, withT, collectAll bool) error {
	s.withT = withT
	s.collectAll = collectAll
	s.models = nil
	s.branches = 0
	s.atomics = nil
	for _, a := range ab.Individuals() {
		set, has := ab.labels[a]
		if !has {
			continue
		}
		for _, c := range set.Concepts() {
			if err := ValidateConcept(c); err != nil {
				return err
			}
		}
	}
	if premise != nil {
		if err := ValidateConcept(premise.Sub); err != nil {
			return err
		}
		if err := ValidateConcept(premise.Super); err != nil {
			return err
		}
	}
	if withT {
		s.atomics = s.signature(ab, premise)
	}
	return nil
}

// signature collects every atomic concept the run can encounter: those of
// the initial ABox, the premise, and both sides of every TBox definition.
func (s *Solver) signature(ab *ABox, premise *Premise) []NamedConcept {
	seen := make(map[NamedConcept]struct{})
	for _, set := range ab.labels {
		for _, c := range set.Concepts() {
			collectAtomics(c, seen)
		}
	}
	if premise != nil {
		collectAtomics(premise.Sub, seen)
		collectAtomics(premise.Super, seen)
	}
	s.tbox.atomics(seen)
	res := make([]NamedConcept, 0, len(seen))
	for atom := range seen {
		res = append(res, atom)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// explore saturates ab, branching where needed. It returns true when the
// search should stop because a model was found and the caller asked for a
// single one. Branch alternatives run on clones, abandoning an alternative
// restores the pre-branch state by construction.
func (s *Solver) explore(ab *ABox) bool {
	for {
		if reason, clash := ab.FindClash(); clash {
			s.logger.Debug("clash, abandoning branch", zap.String("reason", reason))
			return false
		}
		if s.applyDeterministic(ab) {
			continue
		}
		if s.applyGenerative(ab) {
			continue
		}
		if s.injectDecisions(ab) {
			continue
		}
		rule, alts := s.findBranch(ab)
		if alts == nil {
			s.logger.Debug("saturated clash-free ABox found")
			s.models = append(s.models, ab)
			return !s.collectAll
		}
		s.branches += uint(len(alts))
		s.logger.Debug("branching", zap.String("rule", rule), zap.Int("alternatives", len(alts)))
		for _, alt := range alts {
			child := ab.Clone()
			if !alt(child) {
				s.logger.Debug("alternative collapsed on entry")
				continue
			}
			if s.explore(child) {
				return true
			}
		}
		return false
	}
}
