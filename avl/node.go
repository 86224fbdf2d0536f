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
	"fmt"

	"github.com/rs/zerolog/log"
)

// Node is a single element of a Tree. The parent link is a back
// reference only; children are reached through left and right.
type Node struct {
	key    int
	height int // leaf = 0
	bf     int // right minus left, see updateBalance
	left   *Node
	right  *Node
	parent *Node
}

func newNode(key int, parent *Node) *Node {
	return &Node{
		key:    key,
		parent: parent,
	}
}

// Key returns the ordering value of the node.
func (n *Node) Key() int {
	return n.key
}

// Height returns the cached height of the subtree rooted at n.
func (n *Node) Height() int {
	return n.height
}

// BalanceFactor returns the cached balance factor of n.
func (n *Node) BalanceFactor() int {
	return n.bf
}

// Left returns the left child or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child or nil.
func (n *Node) Right() *Node {
	return n.right
}

// Parent returns the structural parent, nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsLeaf is true when n has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// IsMissingChild is true when at least one child slot is empty.
func (n *Node) IsMissingChild() bool {
	return n.left == nil || n.right == nil
}

// HasLeftChild reports whether n has a left child.
func (n *Node) HasLeftChild() bool {
	return n.left != nil
}

// HasRightChild reports whether n has a right child.
func (n *Node) HasRightChild() bool {
	return n.right != nil
}

// deleteChild detaches v from n. Passing anything but a child of n is
// a programming error.
func (n *Node) deleteChild(v *Node) {
	switch {
	case v == nil:
		panic("avl: deleteChild: nil passed as argument")
	case n.left == v:
		n.left = nil
	case n.right == v:
		n.right = nil
	default:
		panic(fmt.Sprintf("avl: deleteChild: %d is not a child of %d", v.key, n.key))
	}
}

// replaceChild puts u into the slot of n that holds v and gives u the
// parent v had. v must be a child of n.
func (n *Node) replaceChild(v *Node, u *Node) {
	if u != nil && (n.left == u || n.right == u) {
		log.Warn().Int("node", n.key).Int("replacement", u.key).Msg("replaceChild: child passed as replacement")
	}
	switch {
	case v == nil:
		panic("avl: replaceChild: nil passed as argument")
	case n.left == v:
		n.left = u
	case n.right == v:
		n.right = u
	default:
		panic(fmt.Sprintf("avl: replaceChild: %d is not a child of %d", v.key, n.key))
	}
	if u != nil {
		u.parent = v.parent
	}
}

// updateHeight recomputes the height of n from the cached heights of
// its children.
func (n *Node) updateHeight() {
	switch {
	case n.IsLeaf():
		n.height = 0
	case n.left == nil:
		n.height = 1 + max(n.right.height, 0)
	case n.right == nil:
		n.height = 1 + max(n.left.height, 0)
	default:
		n.height = 1 + max(n.left.height, n.right.height)
	}
}

// updateBalance recomputes the balance factor of n. Every present
// child is counted one higher than its cached height and a missing
// child counts as zero; the rotation thresholds in insertBalance are
// calibrated against exactly this arithmetic.
func (n *Node) updateBalance() {
	switch {
	case n.left != nil && n.right != nil:
		n.bf = (n.right.height + 1) - (n.left.height + 1)
	case n.left != nil:
		n.bf = 0 - (n.left.height + 1)
	case n.right != nil:
		n.bf = n.right.height + 1
	default:
		n.bf = 0
	}
}
