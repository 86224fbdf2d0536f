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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandLine(t *testing.T) {
	tests := []struct {
		line string
		want Action
	}{
		{"", Action{Kind: ActionNone}},
		{"   ", Action{Kind: ActionNone}},
		{"clear", Action{Kind: ActionClear}},
		{"RESET", Action{Kind: ActionClear}},
		{"help", Action{Kind: ActionHelp}},
		{"?", Action{Kind: ActionHelp}},
		{"q", Action{Kind: ActionQuit}},
		{"load ops.json", Action{Kind: ActionLoad, Path: "ops.json"}},
		{`load "my ops.yaml"`, Action{Kind: ActionLoad, Path: "my ops.yaml"}},
		{"min", Action{Kind: ActionApply, Ops: []Operation{{Step: "min", Kind: OpDeleteMin}}}},
		{"find -4", Action{Kind: ActionApply, Ops: []Operation{{Step: "find", Kind: OpFind, Key: intp(-4)}}}},
		{"i 5 3 1", Action{Kind: ActionApply, Ops: []Operation{
			{Step: "i", Kind: OpInsert, Key: intp(5)},
			{Step: "i", Kind: OpInsert, Key: intp(3)},
			{Step: "i", Kind: OpInsert, Key: intp(1)},
		}}},
		{"rm 7", Action{Kind: ActionApply, Ops: []Operation{{Step: "rm", Kind: OpDelete, Key: intp(7)}}}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommandLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommandLineErrors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"rotate 1", `unknown command "rotate", try help`},
		{"insert", "usage: insert KEY..."},
		{"delete x", `"x" is not an integer key`},
		{"load", "usage: load FILE"},
		{"load a b", "usage: load FILE"},
		{"pop 1", "pop takes no arguments"},
		{`insert "1`, "failed to parse command"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCommandLine(tt.line)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
