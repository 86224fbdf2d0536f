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
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/cybrota/avltree/avl"
)

func plainColor(t *testing.T) {
	t.Helper()
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
}

func TestWriteCheckPasses(t *testing.T) {
	plainColor(t)
	tree := avl.New()
	for _, key := range []int{4, 2, 6, 1, 3} {
		tree.Insert(key)
	}

	var buf bytes.Buffer
	assert.True(t, writeCheck(&buf, tree))
	assert.Equal(t, "OK   structure\nOK   balance\n", buf.String())
}

func TestWriteCheckReportsBrokenOrder(t *testing.T) {
	plainColor(t)
	tree := avl.New()
	for _, key := range []int{4, 2, 6, 1, 3} {
		tree.Insert(key)
	}
	// a two-child delete pulls up the subtree minimum
	tree.Delete(4)

	var buf bytes.Buffer
	assert.False(t, writeCheck(&buf, tree))
	assert.Contains(t, buf.String(), "FAIL structure\n")
	assert.Contains(t, buf.String(), "is not below upper bound")
}

func TestWriteStats(t *testing.T) {
	tree := avl.New()
	for _, key := range []int{2, 1, 3} {
		tree.Insert(key)
	}

	var buf bytes.Buffer
	writeStats(&buf, tree)
	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "PARENT")
	assert.Contains(t, out, "3 nodes, height 1, root 2\n")
}

func TestHelpMessage(t *testing.T) {
	assert.NotEmpty(t, getHelpMessage())
}
