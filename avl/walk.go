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

// InOrder calls fn for every node in ascending key order until fn
// returns false.
func (t *Tree) InOrder(fn func(n *Node) bool) {
	inOrder(t.root, fn)
}

func inOrder(n *Node, fn func(n *Node) bool) bool {
	if n == nil {
		return true
	}
	if !inOrder(n.left, fn) {
		return false
	}
	if !fn(n) {
		return false
	}
	return inOrder(n.right, fn)
}

// Keys returns all keys in ascending order.
func (t *Tree) Keys() []int {
	keys := make([]int, 0, t.size)
	t.InOrder(func(n *Node) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// First returns the node with the lowest key, nil if the tree is empty.
func (t *Tree) First() *Node {
	n := t.root
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// Last returns the node with the highest key, nil if the tree is empty.
func (t *Tree) Last() *Node {
	n := t.root
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
