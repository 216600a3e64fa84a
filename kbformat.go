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
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// The YAML knowledge-base format. Expressions are prefix tag lists:
//
//	tbox:
//	  Woman: [and, Person, Female]
//	  Mother: [and, Woman, [exists, hasChild, Person]]
//	abox:
//	  - [Woman, mary]                      # concept assertion [C, a]
//	  - [hasChild, mary, tom]              # role assertion [r, a, b]
//	  - ["!=", ann, eva]                   # inequality
//	  - [["<=", 2, [rule, hasChild, T]], mary]
//	premise: [subsumes, C1, C2]            # optional
//
// The tag T denotes ⊤ and is only legal in the successor-concept slot of
// [rule, r, T]. Every malformed-input condition is reported as an error
// wrapping ErrMalformed, naming the offending subexpression.

// KB is a parsed knowledge base.
type KB struct {
	TBox    *TBox
	ABox    *ABox
	Premise *Premise
}

// reservedTags are the expression tags of the input language; they are not
// usable as concept or role names.
var reservedTags = map[string]struct{}{
	"and": {}, "or": {}, "not": {}, "implies": {}, "exists": {}, "all": {},
	"rule": {}, "subsumes": {}, ">=": {}, "<=": {}, "!=": {}, "T": {},
}

// ParseKB parses a YAML knowledge base.
func ParseKB(data []byte) (*KB, error) {
	var raw struct {
		TBox    map[string]interface{} `yaml:"tbox"`
		ABox    []interface{}          `yaml:"abox"`
		Premise interface{}            `yaml:"premise"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding knowledge base")
	}
	kb := &KB{TBox: NewTBox(), ABox: NewABox()}
	names := make([]string, 0, len(raw.TBox))
	for name := range raw.TBox {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, reserved := reservedTags[name]; reserved || name == "" {
			return nil, malformedf(name, "invalid concept name %q in tbox", name)
		}
		def, err := parseConcept(raw.TBox[name], false)
		if err != nil {
			return nil, err
		}
		kb.TBox.Define(NamedConcept(name), def)
	}
	for _, entry := range raw.ABox {
		if err := parseAssertion(kb.ABox, entry); err != nil {
			return nil, err
		}
	}
	if raw.Premise != nil {
		premise, err := parsePremise(raw.Premise)
		if err != nil {
			return nil, err
		}
		kb.Premise = premise
	}
	return kb, nil
}

// LoadKB reads and parses a YAML knowledge base file.
func LoadKB(path string) (*KB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading knowledge base %s", path)
	}
	return ParseKB(data)
}

// parseConcept parses a concept expression. allowTop is set only for the
// successor-concept slot of a number restriction, the single position where
// the tag T is legal.
func parseConcept(v interface{}, allowTop bool) (Concept, error) {
	switch v := v.(type) {
	case string:
		if v == "T" {
			if allowTop {
				return Top, nil
			}
			return nil, malformedf(v, "tag T is only legal inside a number restriction")
		}
		if _, reserved := reservedTags[v]; reserved {
			return nil, malformedf(v, "tag %q is not a concept", v)
		}
		if v == "" {
			return nil, malformedf(v, "empty concept name")
		}
		return NamedConcept(v), nil
	case []interface{}:
		return parseTagged(v, allowTop)
	default:
		return nil, malformedf(v, "expected a concept expression, got %T", v)
	}
}

func parseTagged(list []interface{}, allowTop bool) (Concept, error) {
	if len(list) == 0 {
		return nil, malformedf(list, "empty expression")
	}
	tag, ok := list[0].(string)
	if !ok {
		return nil, malformedf(list, "expression head must be a tag, got %T", list[0])
	}
	switch tag {
	case "not":
		if len(list) != 2 {
			return nil, malformedf(list, "not takes one argument, got %d", len(list)-1)
		}
		c, err := parseConcept(list[1], false)
		if err != nil {
			return nil, err
		}
		return NewNegation(c), nil
	case "and", "or":
		// n-ary forms decompose into binary
		if len(list) < 3 {
			return nil, malformedf(list, "%s takes at least two arguments, got %d", tag, len(list)-1)
		}
		res, err := parseConcept(list[1], false)
		if err != nil {
			return nil, err
		}
		for _, item := range list[2:] {
			next, err := parseConcept(item, false)
			if err != nil {
				return nil, err
			}
			if tag == "and" {
				res = NewConjunction(res, next)
			} else {
				res = NewDisjunction(res, next)
			}
		}
		return res, nil
	case "implies":
		if len(list) != 3 {
			return nil, malformedf(list, "implies takes two arguments, got %d", len(list)-1)
		}
		a, err := parseConcept(list[1], false)
		if err != nil {
			return nil, err
		}
		b, err := parseConcept(list[2], false)
		if err != nil {
			return nil, err
		}
		return NewImplication(a, b), nil
	case "exists", "all":
		if len(list) != 3 {
			return nil, malformedf(list, "%s takes a role and a concept, got %d arguments", tag, len(list)-1)
		}
		r, err := parseRoleName(list[1])
		if err != nil {
			return nil, err
		}
		c, err := parseConcept(list[2], false)
		if err != nil {
			return nil, err
		}
		if tag == "exists" {
			return NewExistential(r, c), nil
		}
		return NewUniversal(r, c), nil
	case ">=", "<=":
		if len(list) != 3 {
			return nil, malformedf(list, "%s takes a cardinality and a rule, got %d arguments", tag, len(list)-1)
		}
		n, err := parseCardinality(list[1])
		if err != nil {
			return nil, err
		}
		r, c, err := parseRule(list[2])
		if err != nil {
			return nil, err
		}
		if tag == ">=" {
			return NewAtLeast(n, r, c), nil
		}
		return NewAtMost(n, r, c), nil
	case "rule":
		return nil, malformedf(list, "rule is only legal inside a number restriction")
	case "subsumes":
		return nil, malformedf(list, "subsumes is only legal at the premise root")
	default:
		return nil, malformedf(list, "unknown tag %q", tag)
	}
}

func parseCardinality(v interface{}) (uint, error) {
	n, ok := v.(int)
	if !ok {
		return 0, malformedf(v, "cardinality must be an integer, got %T", v)
	}
	if n < 0 {
		return 0, malformedf(v, "cardinality must be non-negative, got %d", n)
	}
	return uint(n), nil
}

// parseRule parses [rule, r, C], the (role, concept) pair of a number
// restriction. This is the one slot where T is legal.
func parseRule(v interface{}) (Role, Concept, error) {
	list, ok := v.([]interface{})
	if !ok || len(list) != 3 {
		return "", nil, malformedf(v, "number restriction needs [rule, role, concept]")
	}
	tag, ok := list[0].(string)
	if !ok || tag != "rule" {
		return "", nil, malformedf(v, "number restriction needs [rule, role, concept]")
	}
	r, err := parseRoleName(list[1])
	if err != nil {
		return "", nil, err
	}
	c, err := parseConcept(list[2], true)
	if err != nil {
		return "", nil, err
	}
	return r, c, nil
}

func parseRoleName(v interface{}) (Role, error) {
	name, ok := v.(string)
	if !ok {
		return "", malformedf(v, "role name must be a string, got %T", v)
	}
	if name == "" {
		return "", malformedf(v, "empty role name")
	}
	if _, reserved := reservedTags[name]; reserved {
		return "", malformedf(v, "tag %q is not a role name", name)
	}
	return Role(name), nil
}

func parseIndividualName(v interface{}) (string, error) {
	name, ok := v.(string)
	if !ok {
		return "", malformedf(v, "individual name must be a string, got %T", v)
	}
	if name == "" {
		return "", malformedf(v, "empty individual name")
	}
	return name, nil
}

// parseAssertion parses one ABox entry into ab. The shape is decided by
// arity and head tag: [C, a] is a concept assertion, [r, a, b] a role
// assertion, ["!=", a, b] an inequality.
func parseAssertion(ab *ABox, v interface{}) error {
	list, ok := v.([]interface{})
	if !ok {
		return malformedf(v, "an assertion must be a list, got %T", v)
	}
	switch len(list) {
	case 2:
		c, err := parseConcept(list[0], false)
		if err != nil {
			return err
		}
		name, err := parseIndividualName(list[1])
		if err != nil {
			return err
		}
		ab.AddConcept(c, ab.Individual(name))
		return nil
	case 3:
		if tag, ok := list[0].(string); ok && tag == "!=" {
			a, err := parseIndividualName(list[1])
			if err != nil {
				return err
			}
			b, err := parseIndividualName(list[2])
			if err != nil {
				return err
			}
			ab.AddDistinct(ab.Individual(a), ab.Individual(b))
			return nil
		}
		r, err := parseRoleName(list[0])
		if err != nil {
			return err
		}
		a, err := parseIndividualName(list[1])
		if err != nil {
			return err
		}
		b, err := parseIndividualName(list[2])
		if err != nil {
			return err
		}
		ab.AddRole(r, ab.Individual(a), ab.Individual(b))
		return nil
	default:
		return malformedf(v, "an assertion has two or three elements, got %d", len(list))
	}
}

// parsePremise parses [subsumes, C1, C2]. The subsumes tag is legal only
// here, at the premise root.
func parsePremise(v interface{}) (*Premise, error) {
	list, ok := v.([]interface{})
	if !ok || len(list) == 0 {
		return nil, malformedf(v, "premise must be [subsumes, C1, C2]")
	}
	tag, ok := list[0].(string)
	if !ok || tag != "subsumes" {
		return nil, malformedf(v, "premise must be [subsumes, C1, C2]")
	}
	if len(list) != 3 {
		return nil, malformedf(v, "subsumes takes two concepts, got %d arguments", len(list)-1)
	}
	sub, err := parseConcept(list[1], false)
	if err != nil {
		return nil, err
	}
	super, err := parseConcept(list[2], false)
	if err != nil {
		return nil, err
	}
	return NewPremise(sub, super), nil
}
