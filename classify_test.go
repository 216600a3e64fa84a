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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFamily(t *testing.T) {
	solver := NewSolver(familyTBox())
	subsumptions, err := solver.Classify()
	require.NoError(t, err)

	assert.Contains(t, subsumptions, Subsumption{Sub: mother, Super: woman})
	assert.NotContains(t, subsumptions, Subsumption{Sub: woman, Super: mother})
	assert.NotContains(t, subsumptions, Subsumption{Sub: woman, Super: man})
	assert.NotContains(t, subsumptions, Subsumption{Sub: man, Super: woman})
	assert.NotContains(t, subsumptions, Subsumption{Sub: mother, Super: man})
}
