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

// Subsumption records that Sub ⊑ Super holds under the TBox.
type Subsumption struct {
	Sub, Super NamedConcept
}

func (sub Subsumption) String() string {
	return string(sub.Sub) + " ⊑ " + string(sub.Super)
}

// Classify computes the subsumption relation over all defined names of the
// solver's TBox by deciding every ordered pair with the tableau. The
// reflexive pairs are omitted. The result is ordered by (Sub, Super).
func (s *Solver) Classify() ([]Subsumption, error) {
	names := s.tbox.Names()
	var res []Subsumption
	for _, sub := range names {
		for _, super := range names {
			if sub == super {
				continue
			}
			_, holds, err := s.Subsumes(NewABox(), NewPremise(sub, super))
			if err != nil {
				return nil, err
			}
			if holds {
				s.logger.Debug("subsumption holds",
					zap.String("sub", string(sub)), zap.String("super", string(super)))
				res = append(res, Subsumption{Sub: sub, Super: super})
			}
		}
	}
	return res, nil
}
