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
	"io"
)

type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// DefaultLabel renders a node as "key h=height bf=balance".
func DefaultLabel(n *Node) string {
	return fmt.Sprintf("%d h=%d bf=%+d", n.key, n.height, n.bf)
}

// Fprint writes an ASCII diagram of the tree to w, right subtrees
// above their parent and left subtrees below. label renders each node;
// nil means DefaultLabel. It returns the number of levels printed.
func (t *Tree) Fprint(w io.Writer, label func(n *Node) string) int {
	if label == nil {
		label = DefaultLabel
	}
	return fprintNode(w, t.root, "", branchRoot, label)
}

func fprintNode(w io.Writer, n *Node, prefix string, br branch, label func(n *Node) string) int {
	if n == nil {
		return 0
	}
	rd := 0
	ld := 0
	if n.right != nil {
		pad := "       "
		if br == branchLeft {
			pad = "|      "
		}
		rd = fprintNode(w, n.right, prefix+pad, branchRight, label)
	}
	switch br {
	case branchRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case branchLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case branchRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintln(w, label(n))
	if n.left != nil {
		pad := "       "
		if br == branchRight {
			pad = "|      "
		}
		ld = fprintNode(w, n.left, prefix+pad, branchLeft, label)
	}
	return 1 + max(rd, ld)
}
