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
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avltree/avl"
)

func testConfig() *Config {
	cfg := defaultConfig
	return &cfg
}

func TestLoadSessionAppliesScript(t *testing.T) {
	path := writeScript(t, "ops.json", `{
		"metadata": {"numOps": 6},
		"1": {"operation": "Insert", "key": 1},
		"2": {"operation": "Insert", "key": 2},
		"3": {"operation": "Insert", "key": 3},
		"4": {"operation": "Insert", "key": 4},
		"5": {"operation": "Find", "key": 4},
		"6": {"operation": "DeleteMin"}
	}`)

	s, err := loadSession(testConfig(), path)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, s.Tree().Keys())
	assert.Equal(t, 2, s.Tree().Root().Key())
	assert.Equal(t, uint64(5), s.Revision())
}

func TestRunScriptStopsAtFailingStep(t *testing.T) {
	script, err := ParseScript([]byte(`{
		"1": {"operation": "Insert", "key": 1},
		"2": {"operation": "DeleteMin"},
		"3": {"operation": "DeleteMin"},
		"4": {"operation": "Insert", "key": 9}
	}`), false)
	require.NoError(t, err)

	s := newTestSession()
	outcomes, err := RunScript(s, script, DriverConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyTree)
	assert.Contains(t, err.Error(), `step "3"`)
	assert.Len(t, outcomes, 2)
	assert.True(t, s.Tree().Empty())
}

func TestRunScriptSkipsUnknownOperations(t *testing.T) {
	script, err := ParseScript([]byte(`[
		{"operation": "Insert", "key": 1},
		{"operation": "Rebalance"},
		{"operation": "Insert", "key": 2}
	]`), false)
	require.NoError(t, err)

	outcomes, err := RunScript(newTestSession(), script, DriverConfig{})
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	assert.True(t, outcomes[1].Skipped)
}

// twelveInserts numbers its steps 1 to 12 and inserts the step number.
func twelveInserts() string {
	steps := make([]string, 0, 12)
	for i := 1; i <= 12; i++ {
		steps = append(steps, fmt.Sprintf(`"%d": {"operation": "Insert", "key": %d}`, i, i))
	}
	return "{" + strings.Join(steps, ",\n") + "}"
}

func TestLoadSessionStepOrder(t *testing.T) {
	path := writeScript(t, "ops.json", twelveInserts())

	tests := []struct {
		name        string
		natural     bool
		root        int
		left, right int
	}{
		// 1, 10, 11, 12, 2, ..., 9
		{"byte order", false, 6, 4, 10},
		// 1, 2, ..., 12
		{"natural order", true, 8, 4, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Driver.NaturalOrder = tt.natural

			s, err := loadSession(cfg, path)
			require.NoError(t, err)

			record := s.Tree().Record()
			assert.Equal(t, tt.root, record[avl.FieldRoot])
			assert.Equal(t, 3, record[avl.FieldHeight])
			assert.Equal(t, 12, record[avl.FieldSize])
			root, ok := record.Node(tt.root)
			require.True(t, ok)
			assert.Equal(t, tt.left, root[avl.FieldLeft])
			assert.Equal(t, tt.right, root[avl.FieldRight])
			assert.NoError(t, s.Tree().CheckBalance())
		})
	}
}

func TestRunScriptInsertOnly(t *testing.T) {
	script, err := ParseScript([]byte(`{
		"1": {"operation": "Insert", "key": 4},
		"2": {"operation": "Insert", "key": 2},
		"3": {"operation": "DeleteMin"},
		"4": {"operation": "Delete", "key": 4},
		"5": {"operation": "Find", "key": 2}
	}`), false)
	require.NoError(t, err)

	s := newTestSession()
	outcomes, err := RunScript(s, script, DriverConfig{InsertOnly: true})
	require.NoError(t, err)
	require.Len(t, outcomes, 5)
	assert.Equal(t, 3, countSkipped(outcomes))
	assert.Equal(t, "skipped DeleteMin", outcomes[2].String())
	assert.Equal(t, "skipped Delete(4)", outcomes[3].String())
	assert.Equal(t, []int{2, 4}, s.Tree().Keys())

	s = newTestSession()
	_, err = RunScript(s, script, DriverConfig{})
	require.NoError(t, err)
	assert.Empty(t, s.Tree().Keys())
}

func TestLoadSessionValidates(t *testing.T) {
	path := writeScript(t, "ops.json", `{"1": {"operation": "Insert"}}`)
	cfg := testConfig()
	cfg.Driver.Validate = true

	_, err := loadSession(cfg, path)
	assert.ErrorIs(t, err, ErrInvalidScript)
}

func TestApplyBarWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	bar := newApplyBar(2, &buf)
	require.NoError(t, bar.Add(2))
	require.NoError(t, bar.Finish())
	assert.Contains(t, buf.String(), "Applying operations...")
}
