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

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/avltree/avl"
)

func twoNodeRecord() avl.Record {
	tree := avl.New()
	tree.Insert(10)
	tree.Insert(5)
	return tree.Record()
}

func TestWriteRecordJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecord(&buf, twoNodeRecord(), FormatJSON, 2))

	expected := `{
  "10": {
    "balance factor": -1,
    "height": 1,
    "left": 5,
    "root": true
  },
  "5": {
    "balance factor": 0,
    "height": 0,
    "parent": 10
  },
  "height": 1,
  "root": 10,
  "size": 2
}
`
	assert.Equal(t, expected, buf.String())
}

func TestWriteRecordCompactJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecord(&buf, avl.New().Record(), FormatJSON, 0))
	assert.Equal(t, "{\"height\":-1,\"size\":0}\n", buf.String())
}

func TestWriteRecordYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecord(&buf, twoNodeRecord(), FormatYAML, 4))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 10, decoded["root"])
	assert.Equal(t, 2, decoded["size"])
	assert.Equal(t, map[string]any{"balance factor": 0, "height": 0, "parent": 10}, decoded["5"])
	assert.Contains(t, buf.String(), "\n    balance factor: -1\n")
}

func TestWriteRecordCBOR(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecord(&buf, twoNodeRecord(), FormatCBOR, 2))

	var decoded map[string]any
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, uint64(10), decoded["root"])
	assert.Equal(t, uint64(2), decoded["size"])
	assert.Equal(t, uint64(1), decoded["height"])
	assert.Contains(t, decoded, "10")
	assert.Contains(t, decoded, "5")

	// deterministic encoding
	var again bytes.Buffer
	require.NoError(t, WriteRecord(&again, twoNodeRecord(), FormatCBOR, 2))
	assert.Equal(t, buf.Bytes(), again.Bytes())
}

func TestWriteRecordUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRecord(&buf, twoNodeRecord(), "xml", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
	assert.Zero(t, buf.Len())
}
