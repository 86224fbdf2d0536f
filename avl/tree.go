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

// Tree holds the root node and the number of nodes reachable from it.
type Tree struct {
	root *Node
	size int
}

// New creates an initially empty tree.
func New() *Tree {
	return &Tree{}
}

// Size is the number of nodes currently in the tree.
func (t *Tree) Size() int {
	return t.size
}

// Empty is true when the tree holds no nodes.
func (t *Tree) Empty() bool {
	return t.size == 0
}

// Root returns the root node, nil for an empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Height returns the cached height of the root, -1 for an empty tree.
func (t *Tree) Height() int {
	if t.root == nil {
		return -1
	}
	return t.root.height
}

// Find reports whether a node holding key is reachable. Ties descend
// to the right, the same way Insert places duplicates.
func (t *Tree) Find(key int) bool {
	current := t.root
	for current != nil {
		if current.key == key {
			return true
		}
		if key < current.key {
			current = current.left
		} else {
			current = current.right
		}
	}
	return false
}

// Insert attaches key as a new leaf and rebalances the tree. A key
// equal to an existing one is placed in the right subtree.
func (t *Tree) Insert(key int) {
	if t.root == nil {
		t.root = newNode(key, nil)
		t.size++
		return
	}

	var last *Node
	current := t.root
	for current != nil {
		last = current
		if key < current.key {
			current = current.left
		} else {
			current = current.right
		}
	}

	if key < last.key {
		last.left = newNode(key, last)
	} else {
		last.right = newNode(key, last)
	}

	// rotation decisions read the cached fields, so they must be
	// current before the walk starts and again after it reshapes
	t.refresh()
	t.insertBalance(last)
	t.refresh()
	t.size++
}

// Delete removes key from the tree without rebalancing.
//
// A leaf is detached, a node with one child is replaced by that child
// and a node with two children takes over the smallest key of its own
// subtree, which is removed in its place. After handling a match the
// descent continues through the links of the handled node, so equal
// keys further down the same path are removed by the same call:
// inserting 10, 5, 15, 15 and deleting 15 leaves 5 and 10.
//
// The result is always false; use Find to learn whether key is present.
func (t *Tree) Delete(key int) bool {
	current := t.root
	for current != nil {
		if current.key == key {
			switch {
			case current.IsLeaf():
				t.deleteLeaf(current)
			case current.left == nil:
				t.splice(current, current.right)
			case current.right == nil:
				t.splice(current, current.left)
			default:
				current.key = t.deleteMin(current)
			}
			t.refresh()
		}
		if key < current.key {
			current = current.left
		} else {
			current = current.right
		}
	}
	return false
}

// DeleteMin removes the node with the smallest key and returns that key.
// The tree must not be empty.
func (t *Tree) DeleteMin() int {
	if t.root == nil {
		panic("avl: DeleteMin on empty tree")
	}
	key := t.deleteMin(t.root)
	t.refresh()
	return key
}

// deleteMin removes the leftmost node below from, moving its right
// subtree into its place, and returns its key.
func (t *Tree) deleteMin(from *Node) int {
	var last *Node
	for current := from; current != nil; current = current.left {
		last = current
	}

	parent := last.parent
	if parent == nil {
		t.root = last.right
		if last.right != nil {
			last.right.parent = nil
		}
	} else {
		parent.left = last.right
		if last.right != nil {
			last.right.parent = parent
		}
	}
	t.size--
	return last.key
}

func (t *Tree) deleteLeaf(leaf *Node) {
	if leaf.parent == nil {
		t.root = nil
	} else {
		leaf.parent.deleteChild(leaf)
	}
	t.size--
}

// splice replaces n by its only child.
func (t *Tree) splice(n *Node, child *Node) {
	if n.parent == nil {
		t.root = child
		child.parent = nil
	} else {
		n.parent.replaceChild(n, child)
	}
	t.size--
}
