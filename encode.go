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
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/avltree/avl"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCBOR = "cbor"
)

var formats = []string{FormatJSON, FormatYAML, FormatCBOR}

func isKnownFormat(format string) bool {
	return slices.Contains(formats, format)
}

// WriteRecord encodes record to w. JSON is indented by indent spaces
// and ends with a newline; YAML uses the same indent when it is at
// least 2; CBOR uses the canonical encoding.
func WriteRecord(w io.Writer, record avl.Record, format string, indent int) error {
	switch format {
	case FormatJSON:
		var data []byte
		var err error
		if indent > 0 {
			data, err = json.MarshalIndent(record, "", strings.Repeat(" ", indent))
		} else {
			data, err = json.Marshal(record)
		}
		if err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if indent >= 2 {
			enc.SetIndent(indent)
		}
		if err := enc.Encode(map[string]any(record)); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
		return enc.Close()

	case FormatCBOR:
		mode, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return err
		}
		data, err := mode.Marshal(map[string]any(record))
		if err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
