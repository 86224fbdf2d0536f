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
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed script.schema.json
var scriptSchema []byte

// metadataStep is the name of the entry that carries free-form metadata
// in object shaped scripts; it is never applied.
const metadataStep = "metadata"

type OpKind string

const (
	OpInsert    OpKind = "Insert"
	OpDelete    OpKind = "Delete"
	OpDeleteMin OpKind = "DeleteMin"
	OpFind      OpKind = "Find"
)

// Operation is a single step of a script.
type Operation struct {
	Step string `json:"-"`
	Kind OpKind `json:"operation"`
	Key  *int   `json:"key,omitempty"`
}

func (op Operation) String() string {
	if op.Key == nil {
		return string(op.Kind)
	}
	return fmt.Sprintf("%s(%d)", op.Kind, *op.Key)
}

func (op Operation) known() bool {
	switch op.Kind {
	case OpInsert, OpDelete, OpDeleteMin, OpFind:
		return true
	}
	return false
}

// needsKey reports whether the operation is meaningless without a key.
func (op Operation) needsKey() bool {
	switch op.Kind {
	case OpInsert, OpDelete, OpFind:
		return true
	}
	return false
}

// Script is a parsed operation file.
type Script struct {
	Metadata   any
	Operations []Operation
}

var ErrInvalidScript = errors.New("script does not match schema")

// LoadScript reads the script at path. Files ending in .yaml or .yml
// are YAML, everything else is JSON. With opts.Validate set the document
// is checked against the embedded schema before it is parsed;
// opts.NaturalOrder selects the step order of object scripts.
func LoadScript(path string, opts DriverConfig) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("script file %s not found", path)
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML script %s: %w", path, err)
		}
	}

	if opts.Validate {
		if err := ValidateScript(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	script, err := ParseScript(data, opts.NaturalOrder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return script, nil
}

// ValidateScript checks a JSON document against the script schema.
func ValidateScript(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(scriptSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to validate script: %w", err)
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		details = append(details, verr.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidScript, strings.Join(details, "; "))
}

// ParseScript decodes a JSON script. An array is applied in document
// order. An object maps step names to operations and is applied in
// byte order of the step names, so "10" runs before "2"; with
// naturalOrder set integer names are compared numerically instead.
// The "metadata" entry of an object is kept aside.
func ParseScript(data []byte, naturalOrder bool) (*Script, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("script is empty")
	}

	script := &Script{}

	if data[0] == '[' {
		if err := json.Unmarshal(data, &script.Operations); err != nil {
			return nil, fmt.Errorf("failed to parse operations: %w", err)
		}
		for i := range script.Operations {
			script.Operations[i].Step = strconv.Itoa(i)
		}
	} else {
		var steps map[string]json.RawMessage
		if err := json.Unmarshal(data, &steps); err != nil {
			return nil, fmt.Errorf("failed to parse operations: %w", err)
		}

		if raw, ok := steps[metadataStep]; ok {
			if err := json.Unmarshal(raw, &script.Metadata); err != nil {
				return nil, fmt.Errorf("failed to parse metadata: %w", err)
			}
			delete(steps, metadataStep)
		}

		names := make([]string, 0, len(steps))
		for name := range steps {
			names = append(names, name)
		}
		if naturalOrder {
			sort.Slice(names, func(i, j int) bool { return stepLess(names[i], names[j]) })
		} else {
			sort.Strings(names)
		}

		script.Operations = make([]Operation, 0, len(names))
		for _, name := range names {
			var op Operation
			if err := json.Unmarshal(steps[name], &op); err != nil {
				return nil, fmt.Errorf("step %q: %w", name, err)
			}
			op.Step = name
			script.Operations = append(script.Operations, op)
		}
	}

	for _, op := range script.Operations {
		if op.needsKey() && op.Key == nil {
			return nil, fmt.Errorf("step %q: %s requires a key", op.Step, op.Kind)
		}
	}
	return script, nil
}

// stepLess orders step names numerically when both are integers and
// lexicographically otherwise; integers sort before other names.
func stepLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}

// yamlToJSON re-encodes a YAML document as JSON so that both formats
// share validation and parsing.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(normalizeYAML(doc))
}

// normalizeYAML turns maps with non-string keys, such as `1:` steps,
// into string keyed maps that encoding/json accepts.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = normalizeYAML(child)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, child := range t {
			m[fmt.Sprint(k)] = normalizeYAML(child)
		}
		return m
	case []any:
		for i, child := range t {
			t[i] = normalizeYAML(child)
		}
		return t
	}
	return v
}
