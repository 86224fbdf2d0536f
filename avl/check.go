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
	"errors"
	"fmt"
)

// Verify checks the structural invariants that hold after every
// operation: parent links match child links, keys are in search tree
// order (ties to the right), the size matches the reachable nodes and
// every cached height and balance factor is current. All violations
// found are joined into the returned error.
func (t *Tree) Verify() error {
	var errs []error

	if t.root != nil && t.root.parent != nil {
		errs = append(errs, fmt.Errorf("root %d has parent %d", t.root.key, t.root.parent.key))
	}

	count := 0
	var walk func(n *Node, lo, hi *int)
	walk = func(n *Node, lo, hi *int) {
		if n == nil {
			return
		}
		count++

		if lo != nil && n.key < *lo {
			errs = append(errs, fmt.Errorf("node %d is below lower bound %d", n.key, *lo))
		}
		if hi != nil && n.key >= *hi {
			errs = append(errs, fmt.Errorf("node %d is not below upper bound %d", n.key, *hi))
		}
		if n.left != nil && n.left.parent != n {
			errs = append(errs, fmt.Errorf("left child %d of %d has wrong parent", n.left.key, n.key))
		}
		if n.right != nil && n.right.parent != n {
			errs = append(errs, fmt.Errorf("right child %d of %d has wrong parent", n.right.key, n.key))
		}

		expect := *n
		expect.updateHeight()
		expect.updateBalance()
		if expect.height != n.height {
			errs = append(errs, fmt.Errorf("node %d: cached height %d, actual %d", n.key, n.height, expect.height))
		}
		if expect.bf != n.bf {
			errs = append(errs, fmt.Errorf("node %d: cached balance factor %d, actual %d", n.key, n.bf, expect.bf))
		}

		key := n.key
		walk(n.left, lo, &key)
		walk(n.right, &key, hi)
	}
	walk(t.root, nil, nil)

	if count != t.size {
		errs = append(errs, fmt.Errorf("size is %d but %d nodes are reachable", t.size, count))
	}
	return errors.Join(errs...)
}

// CheckBalance reports every node whose balance factor is outside
// [-1, 1]. A tree built only by Insert always passes.
func (t *Tree) CheckBalance() error {
	var errs []error
	t.InOrder(func(n *Node) bool {
		if n.bf < -1 || n.bf > 1 {
			errs = append(errs, fmt.Errorf("node %d is unbalanced: balance factor %d", n.key, n.bf))
		}
		return true
	})
	return errors.Join(errs...)
}
