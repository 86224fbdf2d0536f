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

// Package avl is an AVL balanced tree over int keys with parent
// pointers, so that the rebalancing walk can climb from an inserted
// node towards the root.
//
// Note: a tree is not thread safe, either access it from a single
// goroutine or guard it with a mutex.
//
// Heights and balance factors are cached on every node and recomputed
// over the whole tree after each structural change. A leaf has height
// 0 and the balance factor is right minus left, where a present child
// counts as its height plus one and a missing child counts as zero.
//
// Only Insert rebalances. Delete and DeleteMin splice nodes out without
// rotating, so a tree that has seen deletions may violate the AVL
// height bound until later insertions happen to restore it.
package avl
