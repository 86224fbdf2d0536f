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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionApply
	ActionClear
	ActionLoad
	ActionHelp
	ActionQuit
)

// Action is one parsed explorer command line.
type Action struct {
	Kind ActionKind
	Ops  []Operation // ActionApply
	Path string      // ActionLoad
}

var verbs = map[string]OpKind{
	"insert": OpInsert, "i": OpInsert, "add": OpInsert,
	"delete": OpDelete, "d": OpDelete, "del": OpDelete, "rm": OpDelete,
	"find": OpFind, "f": OpFind, "has": OpFind,
	"min": OpDeleteMin, "deletemin": OpDeleteMin, "pop": OpDeleteMin,
}

// ParseCommandLine turns a line such as `insert 5 3 1` into an Action.
// Keyed verbs accept several keys and expand into one operation each.
func ParseCommandLine(line string) (Action, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return Action{}, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	if len(args) == 0 {
		return Action{Kind: ActionNone}, nil
	}

	verb := strings.ToLower(args[0])
	args = args[1:]

	switch verb {
	case "clear", "reset":
		return Action{Kind: ActionClear}, nil
	case "help", "?":
		return Action{Kind: ActionHelp}, nil
	case "quit", "exit", "q":
		return Action{Kind: ActionQuit}, nil
	case "load":
		if len(args) != 1 {
			return Action{}, errors.New("usage: load FILE")
		}
		return Action{Kind: ActionLoad, Path: args[0]}, nil
	}

	kind, ok := verbs[verb]
	if !ok {
		return Action{}, fmt.Errorf("unknown command %q, try help", verb)
	}

	if kind == OpDeleteMin {
		if len(args) != 0 {
			return Action{}, fmt.Errorf("%s takes no arguments", verb)
		}
		return Action{Kind: ActionApply, Ops: []Operation{{Step: verb, Kind: kind}}}, nil
	}

	if len(args) == 0 {
		return Action{}, fmt.Errorf("usage: %s KEY...", verb)
	}
	ops := make([]Operation, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return Action{}, fmt.Errorf("%q is not an integer key", arg)
		}
		ops = append(ops, Operation{Step: verb, Kind: kind, Key: &key})
	}
	return Action{Kind: ActionApply, Ops: ops}, nil
}
