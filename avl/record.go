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

import "strconv"

// Field names used in a Record.
const (
	FieldRoot          = "root"
	FieldHeight        = "height"
	FieldSize          = "size"
	FieldBalanceFactor = "balance factor"
	FieldLeft          = "left"
	FieldRight         = "right"
	FieldParent        = "parent"
)

// Record is a generic snapshot of the shape of a tree.
//
// The top level holds "root" (the root key), "height" and "size" plus
// one entry per node, keyed by the decimal key. Each node entry holds
// "height" and "balance factor", the keys of its "left", "right" and
// "parent" where present, and "root": true on the root entry.
//
// An empty tree yields {"height": -1, "size": 0}.
type Record map[string]any

// Record returns a snapshot of the tree.
func (t *Tree) Record() Record {
	result := Record{}
	if t.root != nil {
		result[FieldRoot] = t.root.key
		queue := []*Node{t.root}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]

			entry := map[string]any{
				FieldHeight:        v.height,
				FieldBalanceFactor: v.bf,
			}
			if v.left != nil {
				entry[FieldLeft] = v.left.key
				queue = append(queue, v.left)
			}
			if v.right != nil {
				entry[FieldRight] = v.right.key
				queue = append(queue, v.right)
			}
			if v.parent != nil {
				entry[FieldParent] = v.parent.key
			} else {
				entry[FieldRoot] = true
			}
			result[strconv.Itoa(v.key)] = entry
		}
	}
	result[FieldHeight] = t.Height()
	result[FieldSize] = t.size
	return result
}

// Node returns the entry recorded for key and whether there was one.
func (r Record) Node(key int) (map[string]any, bool) {
	entry, ok := r[strconv.Itoa(key)].(map[string]any)
	return entry, ok
}
