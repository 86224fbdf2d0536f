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

// refresh recomputes every cached height and balance factor, children
// before parents.
func (t *Tree) refresh() {
	refreshNode(t.root)
}

func refreshNode(n *Node) {
	if n == nil {
		return
	}
	refreshNode(n.left)
	refreshNode(n.right)
	n.updateHeight()
	n.updateBalance()
}

// rotateRight lifts the left child x of node into node's place:
//
//	      node           x
//	     /                \
//	    x        ->        node
//	     \                /
//	      y              y
//
// and returns x.
func (t *Tree) rotateRight(node *Node) *Node {
	x := node.left
	y := x.right

	t.reparent(node, x)

	x.right = node
	node.parent = x
	node.left = y
	if y != nil {
		y.parent = node
	}

	t.refresh()
	return x
}

// rotateLeft lifts the right child x of node into node's place:
//
//	  node               x
//	      \             /
//	       x    ->  node
//	      /             \
//	     y               y
//
// and returns x.
func (t *Tree) rotateLeft(node *Node) *Node {
	x := node.right
	y := x.left

	t.reparent(node, x)

	x.left = node
	node.parent = x
	node.right = y
	if y != nil {
		y.parent = node
	}

	t.refresh()
	return x
}

// reparent moves x into the slot that node occupies, which may be the
// root of the tree.
func (t *Tree) reparent(node *Node, x *Node) {
	if node.parent == nil {
		x.parent = nil
		t.root = x
		return
	}
	node.parent.replaceChild(node, x)
}

// insertBalance walks up from child, which is the parent of a freshly
// attached leaf, and applies at most one single or double rotation at
// the first ancestor whose balance factor is out of range.
//
// It returns the parent of the rotated subtree's new root, or that root
// itself when it became the root of the tree. If no rotation fires the
// walk ends at the root and the root is returned.
func (t *Tree) insertBalance(child *Node) *Node {
	for child.parent != nil {
		parent := child.parent

		var top *Node
		switch {
		case parent.bf < -1 && child.bf < 0: // LL
			top = t.rotateRight(parent)
		case parent.bf < -1 && child.bf > 0: // LR
			t.rotateLeft(child)
			top = t.rotateRight(parent)
		case parent.bf > 1 && child.bf > 0: // RR
			top = t.rotateLeft(parent)
		case parent.bf > 1 && child.bf < 0: // RL
			t.rotateRight(child)
			top = t.rotateLeft(parent)
		}

		if top != nil {
			if top.parent != nil {
				return top.parent
			}
			return top
		}
		child = parent
	}
	return child
}
