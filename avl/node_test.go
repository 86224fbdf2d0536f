// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeChildPredicates(t *testing.T) {
	n := newNode(5, nil)
	assert.True(t, n.IsLeaf())
	assert.True(t, n.IsMissingChild())
	assert.False(t, n.HasLeftChild())
	assert.False(t, n.HasRightChild())

	n.left = newNode(3, n)
	assert.False(t, n.IsLeaf())
	assert.True(t, n.IsMissingChild())
	assert.True(t, n.HasLeftChild())

	n.right = newNode(7, n)
	assert.False(t, n.IsMissingChild())
	assert.True(t, n.HasRightChild())
}

func TestDeleteChild(t *testing.T) {
	n := newNode(5, nil)
	l := newNode(3, n)
	r := newNode(7, n)
	n.left, n.right = l, r

	n.deleteChild(l)
	assert.Nil(t, n.left)
	assert.Same(t, r, n.right)

	n.deleteChild(r)
	assert.True(t, n.IsLeaf())
}

func TestDeleteChildPanicsOnStranger(t *testing.T) {
	n := newNode(5, nil)
	n.left = newNode(3, n)

	assert.Panics(t, func() { n.deleteChild(newNode(3, nil)) })
	assert.Panics(t, func() { n.deleteChild(nil) })
}

func TestReplaceChild(t *testing.T) {
	g := newNode(10, nil)
	n := newNode(5, g)
	g.left = n
	u := newNode(4, n)

	g.replaceChild(n, u)
	assert.Same(t, u, g.left)
	assert.Same(t, g, u.parent)

	assert.Panics(t, func() { g.replaceChild(n, newNode(1, nil)) })
}

func TestReplaceChildWithExistingChildDoesNotAbort(t *testing.T) {
	n := newNode(5, nil)
	l := newNode(3, n)
	r := newNode(7, n)
	n.left, n.right = l, r

	require.NotPanics(t, func() { n.replaceChild(l, r) })
	assert.Same(t, r, n.left)
	assert.Same(t, r, n.right)
}

func TestHeightAndBalanceFormula(t *testing.T) {
	leaf := func(height int) *Node { return &Node{height: height} }

	testCases := []struct {
		Name           string
		Left, Right    *Node
		ExpectedHeight int
		ExpectedBF     int
	}{
		{Name: "leaf", ExpectedHeight: 0, ExpectedBF: 0},
		{Name: "left only", Left: leaf(0), ExpectedHeight: 1, ExpectedBF: -1},
		{Name: "tall left only", Left: leaf(2), ExpectedHeight: 3, ExpectedBF: -3},
		{Name: "right only", Right: leaf(0), ExpectedHeight: 1, ExpectedBF: 1},
		{Name: "tall right only", Right: leaf(1), ExpectedHeight: 2, ExpectedBF: 2},
		{Name: "both even", Left: leaf(1), Right: leaf(1), ExpectedHeight: 2, ExpectedBF: 0},
		{Name: "both right heavy", Left: leaf(0), Right: leaf(2), ExpectedHeight: 3, ExpectedBF: 2},
		{Name: "both left heavy", Left: leaf(3), Right: leaf(1), ExpectedHeight: 4, ExpectedBF: -2},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			n := &Node{left: tc.Left, right: tc.Right}
			n.updateHeight()
			n.updateBalance()
			assert.Equal(t, tc.ExpectedHeight, n.Height())
			assert.Equal(t, tc.ExpectedBF, n.BalanceFactor())
		})
	}
}
