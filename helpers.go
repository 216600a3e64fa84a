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

// IntDistributor is a type used to generate new uint values.
// The expansion algorithm requires that fresh individuals are introduced by
// the ∃ and ≥ rules, we use this distributor to generate their ids.
// The engine is single-threaded, so no synchronization is needed.
type IntDistributor struct {
	next uint
}

// NewIntDistributor returns a new distributor s.t. the Next method first
// produces the value next.
func NewIntDistributor(next uint) *IntDistributor {
	return &IntDistributor{next: next}
}

// Next returns the next integer value. That is the first element produced
// is the provided next value, then next + 1 etc.
func (dist *IntDistributor) Next() uint {
	next := dist.next
	dist.next++
	return next
}

// Peek returns the value the next call to Next would produce, without
// consuming it. Used when snapshotting an ABox for branching.
func (dist *IntDistributor) Peek() uint {
	return dist.next
}
