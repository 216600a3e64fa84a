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

// FindClash looks for a direct contradiction in the ABox:
//
//   - ⊥(a) for some a
//   - A(a) and ¬A(a) for an atomic A
//   - x ≠ x for some x
//   - (≤ n r.C)(a) with more than n r-successors satisfying C that are
//     pairwise distinguished by inequality
//
// It returns a description of the first clash found. Clashes are not errors,
// they are the normal signal for abandoning a branch.
func (ab *ABox) FindClash() (string, bool) {
	for _, a := range ab.Individuals() {
		if mates, has := ab.distinct[a]; has {
			if _, self := mates[a]; self {
				return fmt.Sprintf("%s ≠ %s", ab.NameOf(a), ab.NameOf(a)), true
			}
		}
		set, has := ab.labels[a]
		if !has {
			continue
		}
		for _, c := range set.Concepts() {
			switch c := c.(type) {
			case BottomConcept:
				return fmt.Sprintf("⊥(%s)", ab.NameOf(a)), true
			case *Negation:
				if set.Contains(c.C) {
					return fmt.Sprintf("%v(%s) and %v(%s)", c.C, ab.NameOf(a), c, ab.NameOf(a)), true
				}
			case *AtMost:
				cands := ab.successorsSatisfying(c.R, a, c.C)
				if uint(len(cands)) <= c.N {
					continue
				}
				if clique := ab.maxDistinguished(cands); uint(len(clique)) > c.N {
					return fmt.Sprintf("%v(%s) with %d distinguished successors", c, ab.NameOf(a), len(clique)), true
				}
			}
		}
	}
	return "", false
}

// HasClash reports whether the ABox contains a clash.
func (ab *ABox) HasClash() bool {
	_, clash := ab.FindClash()
	return clash
}

// maxDistinguished returns a largest subset of cands that is pairwise
// distinguished by the inequality set. Successor sets are small, a simple
// branch-and-extend search is enough.
func (ab *ABox) maxDistinguished(cands []Individual) []Individual {
	var best []Individual
	var extend func(chosen []Individual, rest []Individual)
	extend = func(chosen []Individual, rest []Individual) {
		if len(chosen) > len(best) {
			best = append([]Individual(nil), chosen...)
		}
		for i, cand := range rest {
			ok := true
			for _, c := range chosen {
				if !ab.Distinguished(c, cand) {
					ok = false
					break
				}
			}
			if ok {
				extend(append(chosen, cand), rest[i+1:])
			}
		}
	}
	extend(nil, cands)
	return best
}
