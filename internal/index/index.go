// Copyright 2026 Ian Lewis
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

// Package index implements a sorted in-memory index keyed by folded words.
package index

import (
	"slices"
	"sort"
	"strings"
)

type item[V any] struct {
	key   string
	value V
}

// Index is a generic sorted array index. It is immutable once created and
// safe for concurrent use.
type Index[V any] struct {
	items []item[V]
}

// New creates an index of values. key returns the index key of a value.
// Values with equal keys keep their relative order.
func New[V any](values []V, key func(V) string) *Index[V] {
	items := make([]item[V], 0, len(values))
	for _, v := range values {
		items = append(items, item[V]{key: key(v), value: v})
	}
	slices.SortStableFunc(items, func(a, b item[V]) int {
		return strings.Compare(a.key, b.key)
	})

	return &Index[V]{
		items: items,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.items)
}

// Search performs a binary search over the index and returns the values
// whose key is equal to key.
func (idx *Index[V]) Search(key string) []V {
	return idx.match(key, func(k string) bool { return k == key })
}

// Prefix returns the values whose key starts with prefix.
func (idx *Index[V]) Prefix(prefix string) []V {
	return idx.match(prefix, func(k string) bool { return strings.HasPrefix(k, prefix) })
}

func (idx *Index[V]) match(key string, ok func(string) bool) []V {
	i, _ := sort.Find(len(idx.items), func(i int) int {
		return strings.Compare(key, idx.items[i].key)
	})

	var values []V
	//nolint:revive // This block increments i.
	for ; i < len(idx.items) && ok(idx.items[i].key); i++ {
		values = append(values, idx.items[i].value)
	}
	return values
}
