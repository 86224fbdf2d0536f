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
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheRenderingAndGetRendering(t *testing.T) {
	c := NewRenderCache(time.Minute)
	key := renderKey(3, "show")
	text := "|------+ 1 h=0 bf=+0\n"

	// Initially, GetRendering should miss.
	if got, ok := GetRendering(c, key); ok {
		t.Errorf("GetRendering(%q) = %q; want a miss", key, got)
	}

	CacheRendering(c, key, text)

	if got, ok := GetRendering(c, key); !ok || got != text {
		t.Errorf("GetRendering(%q) = %q, %v; want %q, true", key, got, ok, text)
	}

	// Another revision of the same variant is a different entry.
	if _, ok := GetRendering(c, renderKey(4, "show")); ok {
		t.Errorf("GetRendering for revision 4 should miss")
	}
}

func TestRenderKey(t *testing.T) {
	if got := renderKey(12, "explore"); got != "12/explore" {
		t.Errorf("renderKey(12, explore) = %q; want %q", got, "12/explore")
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := renderKey(1, "show")
	text := "This rendering should expire soon."

	CacheRendering(c, key, text)

	// Immediately after caching, the text should be retrievable.
	if got, ok := GetRendering(c, key); !ok || got != text {
		t.Errorf("GetRendering(%q) = %q; want %q", key, got, text)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got, ok := GetRendering(c, key); ok {
		t.Errorf("After expiration, GetRendering(%q) = %q; want a miss", key, got)
	}
}
