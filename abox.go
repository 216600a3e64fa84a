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
	"sort"
)

// ConceptSet is a set of concepts in NNF, keyed by their canonical form.
type ConceptSet struct {
	m map[string]Concept
}

// NewConceptSet returns a new ConceptSet.
func NewConceptSet(initialCapacity uint) *ConceptSet {
	return &ConceptSet{
		m: make(map[string]Concept, initialCapacity),
	}
}

func (s *ConceptSet) Contains(c Concept) bool {
	_, has := s.m[ConceptKey(c)]
	return has
}

func (s *ConceptSet) ContainsKey(key string) bool {
	_, has := s.m[key]
	return has
}

func (s *ConceptSet) Add(c Concept) bool {
	oldLen := len(s.m)
	s.m[ConceptKey(c)] = c
	return oldLen != len(s.m)
}

func (s *ConceptSet) Union(other *ConceptSet) bool {
	oldLen := len(s.m)
	for k, v := range other.m {
		s.m[k] = v
	}
	return oldLen != len(s.m)
}

// IsSubset tests if s ⊆ other. This is the comparison the blocking check
// runs on label sets.
func (s *ConceptSet) IsSubset(other *ConceptSet) bool {
	if len(s.m) > len(other.m) {
		return false
	}
	for k := range s.m {
		if _, has := other.m[k]; !has {
			return false
		}
	}
	return true
}

// Equals checks if s = other.
func (s *ConceptSet) Equals(other *ConceptSet) bool {
	return len(s.m) == len(other.m) && s.IsSubset(other)
}

func (s *ConceptSet) Copy() *ConceptSet {
	res := NewConceptSet(uint(len(s.m)))
	for k, v := range s.m {
		res.m[k] = v
	}
	return res
}

func (s *ConceptSet) Len() int {
	return len(s.m)
}

// Concepts returns the members sorted by canonical form, so iteration over a
// label set is deterministic.
func (s *ConceptSet) Concepts() []Concept {
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := make([]Concept, len(keys))
	for i, k := range keys {
		res[i] = s.m[k]
	}
	return res
}

// Relation stores the successor pairs of a single role, with a forward and a
// reverse mapping. The rules look successors up through the forward mapping;
// the reverse mapping drives the rewriting of pairs when two individuals
// merge.
type Relation struct {
	mapping        map[Individual]map[Individual]struct{}
	reverseMapping map[Individual]map[Individual]struct{}
}

// NewRelation returns a new empty Relation.
func NewRelation(initialCapacity uint) *Relation {
	return &Relation{
		mapping:        make(map[Individual]map[Individual]struct{}, initialCapacity),
		reverseMapping: make(map[Individual]map[Individual]struct{}, initialCapacity),
	}
}

func addToRelationMap(m map[Individual]map[Individual]struct{}, first, second Individual) bool {
	inner, has := m[first]
	if !has {
		inner = make(map[Individual]struct{})
		m[first] = inner
	}
	oldLen := len(inner)
	inner[second] = struct{}{}
	return len(inner) != oldLen
}

func (r *Relation) Add(a, b Individual) bool {
	first := addToRelationMap(r.mapping, a, b)
	addToRelationMap(r.reverseMapping, b, a)
	return first
}

func (r *Relation) Contains(a, b Individual) bool {
	inner, has := r.mapping[a]
	if !has {
		return false
	}
	_, has = inner[b]
	return has
}

// Successors returns the successors of a in sorted order.
func (r *Relation) Successors(a Individual) []Individual {
	inner, has := r.mapping[a]
	if !has {
		return nil
	}
	res := make([]Individual, 0, len(inner))
	for b := range inner {
		res = append(res, b)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// Predecessors returns the predecessors of b in sorted order.
func (r *Relation) Predecessors(b Individual) []Individual {
	inner, has := r.reverseMapping[b]
	if !has {
		return nil
	}
	res := make([]Individual, 0, len(inner))
	for a := range inner {
		res = append(res, a)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func (r *Relation) Copy() *Relation {
	res := NewRelation(uint(len(r.mapping)))
	for a, inner := range r.mapping {
		for b := range inner {
			res.Add(a, b)
		}
	}
	return res
}

// rename rewrites every pair mentioning from so it mentions to instead.
func (r *Relation) rename(from, to Individual) {
	for _, b := range r.Successors(from) {
		if b == from {
			b = to
		}
		r.Add(to, b)
	}
	for _, a := range r.Predecessors(from) {
		if a == from {
			a = to
		}
		r.Add(a, to)
	}
	for a := range r.reverseMapping[from] {
		delete(r.mapping[a], from)
		if len(r.mapping[a]) == 0 {
			delete(r.mapping, a)
		}
	}
	for b := range r.mapping[from] {
		delete(r.reverseMapping[b], from)
		if len(r.reverseMapping[b]) == 0 {
			delete(r.reverseMapping, b)
		}
	}
	delete(r.mapping, from)
	delete(r.reverseMapping, from)
}

// anonInfo is the generator provenance of an anonymous individual: the
// individual whose ∃ or ≥ label caused the creation, and that label's
// canonical form.
type anonInfo struct {
	parent Individual
	cause  string
}

// ABox is the assertional state the tableau rules rewrite: per-individual
// label sets, a successor relation per role, a symmetric inequality set, the
// naming of individuals and the generator provenance of anonymous ones.
// Within a branch additions are monotonic, a branch is abandoned by dropping
// the clone it ran on.
type ABox struct {
	labels   map[Individual]*ConceptSet
	roles    map[Role]*Relation
	distinct map[Individual]map[Individual]struct{}
	names    map[Individual]string
	byName   map[string]Individual
	anon     map[Individual]anonInfo
	ids      *IntDistributor
}

// NewABox returns a new empty ABox.
func NewABox() *ABox {
	return &ABox{
		labels:   make(map[Individual]*ConceptSet),
		roles:    make(map[Role]*Relation),
		distinct: make(map[Individual]map[Individual]struct{}),
		names:    make(map[Individual]string),
		byName:   make(map[string]Individual),
		anon:     make(map[Individual]anonInfo),
		ids:      NewIntDistributor(0),
	}
}

// Individual returns the individual with the given name, creating it if it
// does not exist yet. Named individuals exist for the whole problem.
func (ab *ABox) Individual(name string) Individual {
	if id, has := ab.byName[name]; has {
		return id
	}
	id := Individual(ab.ids.Next())
	ab.names[id] = name
	ab.byName[name] = id
	return id
}

// Lookup returns the individual with the given name if it exists.
func (ab *ABox) Lookup(name string) (Individual, bool) {
	id, has := ab.byName[name]
	return id, has
}

// FreshIndividual creates a new root individual without a name. It behaves
// like a named individual (never blocked, never merged away in favour of an
// anonymous one); the subsumption check uses it for the test instance.
func (ab *ABox) FreshIndividual() Individual {
	return Individual(ab.ids.Next())
}

// newAnonymous creates an anonymous individual generated for cause at parent.
// Each anonymous individual has exactly one generator.
func (ab *ABox) newAnonymous(parent Individual, cause Concept) Individual {
	id := Individual(ab.ids.Next())
	ab.anon[id] = anonInfo{parent: parent, cause: ConceptKey(cause)}
	return id
}

// IsAnonymous reports whether a was generated by the ∃ or ≥ rule.
func (ab *ABox) IsAnonymous(a Individual) bool {
	_, has := ab.anon[a]
	return has
}

// NameOf returns a printable name for a.
func (ab *ABox) NameOf(a Individual) string {
	if name, has := ab.names[a]; has {
		return name
	}
	return fmt.Sprintf("_:x%d", uint(a))
}

// Labels returns the label set of a, creating it if needed.
func (ab *ABox) Labels(a Individual) *ConceptSet {
	set, has := ab.labels[a]
	if !has {
		set = NewConceptSet(8)
		ab.labels[a] = set
	}
	return set
}

// AddConcept normalizes c and adds it to the label set of a. Reports whether
// the ABox changed.
func (ab *ABox) AddConcept(c Concept, a Individual) bool {
	return ab.Labels(a).Add(NNF(c))
}

// role returns the relation of r, creating it if needed.
func (ab *ABox) role(r Role) *Relation {
	rel, has := ab.roles[r]
	if !has {
		rel = NewRelation(4)
		ab.roles[r] = rel
	}
	return rel
}

// AddRole adds the role assertion r(a, b).
func (ab *ABox) AddRole(r Role, a, b Individual) bool {
	return ab.role(r).Add(a, b)
}

// Successors returns the r-successors of a in sorted order.
func (ab *ABox) Successors(r Role, a Individual) []Individual {
	rel, has := ab.roles[r]
	if !has {
		return nil
	}
	return rel.Successors(a)
}

// HasRole reports whether r(a, b) is asserted.
func (ab *ABox) HasRole(r Role, a, b Individual) bool {
	rel, has := ab.roles[r]
	return has && rel.Contains(a, b)
}

// AddDistinct asserts a ≠ b. The inequality set is kept closed under
// symmetry. a ≠ a is representable, the clash detector reports it.
func (ab *ABox) AddDistinct(a, b Individual) bool {
	first := addToRelationMap(ab.distinct, a, b)
	addToRelationMap(ab.distinct, b, a)
	return first
}

// Distinguished reports whether a and b are asserted to be distinct.
func (ab *ABox) Distinguished(a, b Individual) bool {
	if a == b {
		return false
	}
	mates, has := ab.distinct[a]
	if !has {
		return false
	}
	_, has = mates[b]
	return has
}

// AssertUniqueNames asserts pairwise inequality over all named individuals,
// realizing the unique-name assumption.
func (ab *ABox) AssertUniqueNames() {
	named := make([]Individual, 0, len(ab.names))
	for id := range ab.names {
		named = append(named, id)
	}
	sort.Slice(named, func(i, j int) bool { return named[i] < named[j] })
	for i := 0; i < len(named); i++ {
		for j := i + 1; j < len(named); j++ {
			ab.AddDistinct(named[i], named[j])
		}
	}
}

// Individuals returns every individual mentioned in the ABox, sorted.
func (ab *ABox) Individuals() []Individual {
	seen := make(map[Individual]struct{})
	for id := range ab.labels {
		seen[id] = struct{}{}
	}
	for id := range ab.names {
		seen[id] = struct{}{}
	}
	for id := range ab.anon {
		seen[id] = struct{}{}
	}
	for _, rel := range ab.roles {
		for a, inner := range rel.mapping {
			seen[a] = struct{}{}
			for b := range inner {
				seen[b] = struct{}{}
			}
		}
	}
	res := make([]Individual, 0, len(seen))
	for id := range seen {
		res = append(res, id)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// satisfies reports whether b is known to be an instance of c. The top
// concept holds for every individual, otherwise the label must be present.
func (ab *ABox) satisfies(b Individual, c Concept) bool {
	if _, isTop := c.(TopConcept); isTop {
		return true
	}
	set, has := ab.labels[b]
	return has && set.Contains(c)
}

// successorsSatisfying returns the r-successors of a satisfying c, sorted.
func (ab *ABox) successorsSatisfying(r Role, a Individual, c Concept) []Individual {
	all := ab.Successors(r, a)
	res := all[:0:0]
	for _, b := range all {
		if ab.satisfies(b, c) {
			res = append(res, b)
		}
	}
	return res
}

// Clone returns a deep copy of the ABox. Branching snapshots the state by
// cloning, a failed branch is abandoned by discarding the clone.
func (ab *ABox) Clone() *ABox {
	res := &ABox{
		labels:   make(map[Individual]*ConceptSet, len(ab.labels)),
		roles:    make(map[Role]*Relation, len(ab.roles)),
		distinct: make(map[Individual]map[Individual]struct{}, len(ab.distinct)),
		names:    make(map[Individual]string, len(ab.names)),
		byName:   make(map[string]Individual, len(ab.byName)),
		anon:     make(map[Individual]anonInfo, len(ab.anon)),
		ids:      NewIntDistributor(ab.ids.Peek()),
	}
	for id, set := range ab.labels {
		res.labels[id] = set.Copy()
	}
	for r, rel := range ab.roles {
		res.roles[r] = rel.Copy()
	}
	for a, mates := range ab.distinct {
		inner := make(map[Individual]struct{}, len(mates))
		for b := range mates {
			inner[b] = struct{}{}
		}
		res.distinct[a] = inner
	}
	for id, name := range ab.names {
		res.names[id] = name
	}
	for name, id := range ab.byName {
		res.byName[name] = id
	}
	for id, info := range ab.anon {
		res.anon[id] = info
	}
	return res
}

// Merge rewrites every assertion mentioning y so it mentions x instead, the
// ≤ rule's choice. Named individuals take precedence over anonymous ones,
// and of two anonymous individuals the younger merges into the older so
// generator chains stay rooted. Reports false when x and y are asserted
// distinct, in which case the merge is a clash and the ABox must be
// discarded by the caller.
func (ab *ABox) Merge(y, x Individual) bool {
	if x == y {
		return true
	}
	_, yNamed := ab.names[y]
	_, xNamed := ab.names[x]
	if yNamed && !xNamed {
		y, x = x, y
	} else if !yNamed && !xNamed && y < x {
		y, x = x, y
	}
	if ab.Distinguished(x, y) {
		return false
	}
	// labels
	if set, has := ab.labels[y]; has {
		ab.Labels(x).Union(set)
		delete(ab.labels, y)
	}
	// role assertions
	for _, rel := range ab.roles {
		rel.rename(y, x)
	}
	// inequality mates of y become mates of x; a collapsed y ≠ y pair
	// stays a clash on the survivor
	for mate := range ab.distinct[y] {
		delete(ab.distinct[mate], y)
		if mate == y {
			ab.AddDistinct(x, x)
		} else if mate != x {
			ab.AddDistinct(x, mate)
		}
	}
	delete(ab.distinct, y)
	// provenance: children of y are reparented, y's own record goes away
	delete(ab.anon, y)
	for id, info := range ab.anon {
		if info.parent == y {
			info.parent = x
			ab.anon[id] = info
		}
	}
	// a merged named individual keeps resolving to the survivor
	if name, has := ab.names[y]; has {
		delete(ab.names, y)
		ab.byName[name] = x
	}
	return true
}

// blocked reports whether b is blocked: b is anonymous and some individual
// on its generator chain (b included) is anonymous with a label set that is
// a subset of a strict ancestor's label set. The check runs over the current
// label sets on every firing attempt, additions on either side can make
// blocking hold or cease to hold. Named individuals are never blocked.
func (ab *ABox) blocked(b Individual) bool {
	if !ab.IsAnonymous(b) {
		return false
	}
	chain := []Individual{b}
	cur := b
	for {
		info, has := ab.anon[cur]
		if !has {
			break
		}
		chain = append(chain, info.parent)
		cur = info.parent
	}
	for i := 0; i < len(chain); i++ {
		if !ab.IsAnonymous(chain[i]) {
			continue
		}
		li := ab.Labels(chain[i])
		for j := i + 1; j < len(chain); j++ {
			if li.IsSubset(ab.Labels(chain[j])) {
				return true
			}
		}
	}
	return false
}

// Assertions renders the ABox as a sorted list of assertions, anonymous
// individuals printed as _:xN. Used for model output and tests.
func (ab *ABox) Assertions() []Assertion {
	var res []Assertion
	for _, a := range ab.Individuals() {
		set, has := ab.labels[a]
		if !has {
			continue
		}
		for _, c := range set.Concepts() {
			res = append(res, ConceptAssertion{C: c, A: ab.NameOf(a)})
		}
	}
	roleNames := make([]Role, 0, len(ab.roles))
	for r := range ab.roles {
		roleNames = append(roleNames, r)
	}
	sort.Slice(roleNames, func(i, j int) bool { return roleNames[i] < roleNames[j] })
	for _, r := range roleNames {
		rel := ab.roles[r]
		as := make([]Individual, 0, len(rel.mapping))
		for a := range rel.mapping {
			as = append(as, a)
		}
		sort.Slice(as, func(i, j int) bool { return as[i] < as[j] })
		for _, a := range as {
			for _, b := range rel.Successors(a) {
				res = append(res, RoleAssertion{R: r, A: ab.NameOf(a), B: ab.NameOf(b)})
			}
		}
	}
	for _, a := range ab.Individuals() {
		mates := make([]Individual, 0, len(ab.distinct[a]))
		for mate := range ab.distinct[a] {
			if a < mate {
				mates = append(mates, mate)
			}
		}
		sort.Slice(mates, func(i, j int) bool { return mates[i] < mates[j] })
		for _, mate := range mates {
			res = append(res, InequalityAssertion{A: ab.NameOf(a), B: ab.NameOf(mate)})
		}
	}
	return res
}

// ContainsAssertion reports whether the named individual carries the given
// concept (normalized before the lookup). Convenience for callers inspecting
// a returned model.
func (ab *ABox) ContainsAssertion(c Concept, name string) bool {
	id, has := ab.Lookup(name)
	if !has {
		return false
	}
	return ab.satisfies(id, NNF(c))
}
