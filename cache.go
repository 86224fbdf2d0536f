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
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired renderings every 5 minutes
	renderCacheCleanup = 5 * time.Minute
)

// NewRenderCache creates a cache for rendered tree diagrams. Entries
// live for ttl; a tree that has not changed is never rendered twice
// within that window.
func NewRenderCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, renderCacheCleanup)
}

// renderKey identifies one rendering of one revision of a tree.
func renderKey(revision uint64, variant string) string {
	return fmt.Sprintf("%d/%s", revision, variant)
}

func CacheRendering(c *cache.Cache, key string, text string) {
	c.Set(key, text, cache.DefaultExpiration)
}

func GetRendering(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return val.(string), true
}
