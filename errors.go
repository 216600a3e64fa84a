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

import "github.com/cockroachdb/errors"

// ErrMalformed is the sentinel for ill-formed input: an unknown tag, a wrong
// arity, a negative cardinality, the top tag outside a number restriction, a
// subsumption premise below the root, or an incomplete concept tree. It is
// the only failure mode that is not a logical result, and it is never
// recovered internally. Use errors.Is to test for it.
var ErrMalformed = errors.New("malformed expression")

// malformedf wraps ErrMalformed with a description, attaching the offending
// subexpression as a detail.
func malformedf(node interface{}, format string, args ...interface{}) error {
	err := errors.Wrapf(ErrMalformed, format, args...)
	return errors.WithDetailf(err, "offending subexpression: %v", node)
}

// ValidateConcept checks a programmatically built concept tree for
// well-formedness: no nil subtrees, no empty concept or role names.
// Trees coming out of ParseKB are valid by construction.
func ValidateConcept(c Concept) error {
	if c == nil {
		return malformedf(c, "nil concept")
	}
	switch c := c.(type) {
	case TopConcept, BottomConcept:
		return nil
	case NamedConcept:
		if c == "" {
			return malformedf(c, "empty concept name")
		}
		return nil
	case *Negation:
		return ValidateConcept(c.C)
	case *Conjunction:
		if err := ValidateConcept(c.C); err != nil {
			return err
		}
		return ValidateConcept(c.D)
	case *Disjunction:
		if err := ValidateConcept(c.C); err != nil {
			return err
		}
		return ValidateConcept(c.D)
	case *Existential:
		return validateRestriction(c, c.R, c.C)
	case *Universal:
		return validateRestriction(c, c.R, c.C)
	case *AtLeast:
		return validateRestriction(c, c.R, c.C)
	case *AtMost:
		return validateRestriction(c, c.R, c.C)
	case *Implication:
		if err := ValidateConcept(c.A); err != nil {
			return err
		}
		return ValidateConcept(c.B)
	default:
		return malformedf(c, "unknown concept kind %T", c)
	}
}

func validateRestriction(c Concept, r Role, filler Concept) error {
	if r == "" {
		return malformedf(c, "empty role name")
	}
	return ValidateConcept(filler)
}
