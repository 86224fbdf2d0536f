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

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/willf/bloom"

	"github.com/cybrota/avltree/avl"
)

var ErrEmptyTree = errors.New("tree is empty")

// Outcome describes what applying one operation did.
type Outcome struct {
	Op      Operation
	Skipped bool // unknown or filtered operation, nothing was done
	Found   bool // Find: key present; Delete: key was present
	Min     int  // DeleteMin: removed key
}

func (o Outcome) String() string {
	switch {
	case o.Skipped && o.Op.known():
		return fmt.Sprintf("skipped %s", o.Op)
	case o.Skipped:
		return fmt.Sprintf("skipped unknown operation %q", o.Op.Kind)
	case o.Op.Kind == OpFind && o.Found:
		return fmt.Sprintf("found %d", *o.Op.Key)
	case o.Op.Kind == OpFind:
		return fmt.Sprintf("%d not found", *o.Op.Key)
	case o.Op.Kind == OpDelete && !o.Found:
		return fmt.Sprintf("%d not found, nothing deleted", *o.Op.Key)
	case o.Op.Kind == OpDelete:
		return fmt.Sprintf("deleted %d", *o.Op.Key)
	case o.Op.Kind == OpDeleteMin:
		return fmt.Sprintf("removed minimum %d", o.Min)
	}
	return fmt.Sprintf("inserted %d", *o.Op.Key)
}

// Session owns one tree on behalf of the CLI and the explorer.
//
// A bloom filter of every key ever inserted answers most misses of
// Find without descending; it is only reset with the tree, so deleted
// keys fall through to the real lookup. Renderings are cached per
// revision, which changes with every mutation.
type Session struct {
	tree     *avl.Tree
	filter   *bloom.BloomFilter
	renders  *cache.Cache
	revision uint64
	cfg      ExploreConfig
	logger   zerolog.Logger
}

func NewSession(cfg ExploreConfig) *Session {
	return &Session{
		tree:    avl.New(),
		filter:  bloom.New(cfg.BloomBits, cfg.BloomHashes),
		renders: NewRenderCache(cfg.RenderTTL),
		cfg:     cfg,
		logger:  log.Logger,
	}
}

// SetLogger replaces the logger the session reports through, which
// starts out as the global one.
func (s *Session) SetLogger(l zerolog.Logger) {
	s.logger = l
}

func (s *Session) Tree() *avl.Tree {
	return s.tree
}

// Revision increases with every change to the tree.
func (s *Session) Revision() uint64 {
	return s.revision
}

func (s *Session) Insert(key int) {
	s.tree.Insert(key)
	s.filter.AddString(strconv.Itoa(key))
	s.revision++
}

// Delete removes key and reports whether it was present.
func (s *Session) Delete(key int) bool {
	if !s.Find(key) {
		return false
	}
	s.tree.Delete(key)
	s.revision++
	return true
}

func (s *Session) Find(key int) bool {
	if !s.filter.TestString(strconv.Itoa(key)) {
		return false
	}
	return s.tree.Find(key)
}

// DeleteMin removes the smallest key; unlike avl.Tree.DeleteMin an
// empty tree is reported as ErrEmptyTree.
func (s *Session) DeleteMin() (int, error) {
	if s.tree.Empty() {
		return 0, ErrEmptyTree
	}
	key := s.tree.DeleteMin()
	s.revision++
	return key, nil
}

// Reset drops every key.
func (s *Session) Reset() {
	s.tree = avl.New()
	s.filter.ClearAll()
	s.revision++
}

// Apply performs op. Unknown operations are skipped, not failed.
func (s *Session) Apply(op Operation) (Outcome, error) {
	outcome := Outcome{Op: op}
	if op.needsKey() && op.Key == nil {
		return outcome, fmt.Errorf("%s requires a key", op.Kind)
	}

	switch op.Kind {
	case OpInsert:
		s.Insert(*op.Key)
	case OpDelete:
		outcome.Found = s.Delete(*op.Key)
	case OpFind:
		outcome.Found = s.Find(*op.Key)
	case OpDeleteMin:
		key, err := s.DeleteMin()
		if err != nil {
			return outcome, fmt.Errorf("%s: %w", op.Kind, err)
		}
		outcome.Min = key
	default:
		outcome.Skipped = true
		s.logger.Warn().Str("step", op.Step).Str("operation", string(op.Kind)).Msg("skipping unknown operation")
		return outcome, nil
	}

	s.logger.Debug().Str("step", op.Step).Str("operation", op.String()).Int("size", s.tree.Size()).Msg("applied")
	return outcome, nil
}

// Render draws the tree with label, reusing the drawing of the current
// revision when variant names one that was drawn before.
func (s *Session) Render(variant string, label func(n *avl.Node) string) string {
	key := renderKey(s.revision, variant)
	if text, ok := GetRendering(s.renders, key); ok {
		return text
	}

	var b strings.Builder
	if s.tree.Empty() {
		b.WriteString("(empty tree)\n")
	} else {
		s.tree.Fprint(&b, label)
	}
	text := b.String()
	CacheRendering(s.renders, key, text)
	return text
}
