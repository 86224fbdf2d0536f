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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const explorerHelp = `
# Commands

* ` + "`insert K...`" + ` (` + "`i`" + `, ` + "`add`" + `) insert keys in order
* ` + "`delete K...`" + ` (` + "`d`" + `, ` + "`rm`" + `) delete keys, no rebalancing
* ` + "`find K`" + ` (` + "`f`" + `) look a key up
* ` + "`min`" + ` (` + "`pop`" + `) remove the smallest key
* ` + "`clear`" + ` start over with an empty tree
* ` + "`load FILE`" + ` apply a JSON or YAML script
* ` + "`quit`" + ` leave

# Reading the diagram

Right subtrees are drawn above their parent, left subtrees below.
Every node shows its height (a leaf is 0) and its balance factor,
right minus left. Green is balanced, yellow leans by one and red
breaks the AVL bound, which only deletions can cause.
`

func getHelpMessage() string {
	message := fmt.Sprintf(`
**avltree %s**

Build AVL trees from operation scripts and look at what the rotations did.

Built with Go %s

# 1. Scripts
A script is a JSON (or YAML) object of named steps, applied in byte order
of their names, so "10" runs before "2". With --natural-order (or
driver.natural_order in the config) integer names run numerically.
An entry named metadata is ignored:

    {
      "metadata": {"numOps": 3},
      "1": {"operation": "Insert", "key": 5},
      "2": {"operation": "Insert", "key": 3},
      "3": {"operation": "Insert", "key": 1}
    }

An array of operations is applied in document order.
Supported operations are Insert, Delete, DeleteMin and Find. Steps other than
Insert change the resulting tree; --insert-only (driver.insert_only) skips them.

# 2. Subcommands
* run FILE: print the final tree record (json, yaml or cbor)
* show FILE: draw the final tree
* stats FILE: table of every node
* check FILE: verify the tree invariants
* explore [FILE]: interactive explorer
* settings: show the configuration in ~/.avltree.yaml
%s
# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), explorerHelp)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
