// This file is part of whitespace.
//
// Copyright 2026 The Whitespace Authors
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

package vm

import "fmt"

const (
	heapInitialCapacity = 16
	heapResizeFactor    = 4
	heapPerturbShift    = 5
)

type heapEntry struct {
	key         BigInt
	value       BigInt
	initialized bool
}

// Heap is the set/get-only, never-shrinking BigInt-to-BigInt hash table
// backing the Whitespace heap commands. Collisions are resolved with the
// same open-addressing probe sequence CPython's dict uses, keyed off
// BigInt.Hash instead of a generic hash.
type Heap struct {
	entries []heapEntry
	length  int
}

// NewHeap returns an empty heap at the initial capacity.
func NewHeap() *Heap {
	return &Heap{entries: make([]heapEntry, heapInitialCapacity)}
}

// HeapMissError is returned by Get when key has never been Set.
type HeapMissError struct {
	Key BigInt
}

func (e HeapMissError) Error() string {
	return fmt.Sprintf("heap: no value stored at %s", e.Key.String())
}

func (h *Heap) insertPosition(key BigInt) int {
	hash := key.Hash()
	perturb := hash
	cap := uint32(len(h.entries))
	position := hash % cap
	for h.entries[position].initialized && !h.entries[position].key.Equal(key) {
		position = (position*5 + 1 + perturb) % cap
		perturb >>= heapPerturbShift
	}
	return int(position)
}

func (h *Heap) needsResize() bool {
	return (h.length+1)*3 > len(h.entries)*2
}

func (h *Heap) grow() {
	old := h.entries
	h.entries = make([]heapEntry, len(old)*heapResizeFactor)
	for _, e := range old {
		if !e.initialized {
			continue
		}
		pos := h.insertPosition(e.key)
		h.entries[pos] = e
	}
}

// Set stores value at key, overwriting any previous value. Resizes the
// backing table first if the load factor would exceed 2/3.
func (h *Heap) Set(key, value BigInt) {
	if h.needsResize() {
		h.grow()
	}
	pos := h.insertPosition(key)
	if !h.entries[pos].initialized {
		h.length++
		h.entries[pos].initialized = true
		h.entries[pos].key = key
	}
	h.entries[pos].value = value
}

// Get retrieves the value stored at key, or a HeapMissError if key has
// never been Set.
func (h *Heap) Get(key BigInt) (BigInt, error) {
	pos := h.insertPosition(key)
	if !h.entries[pos].initialized {
		return Zero, HeapMissError{Key: key}
	}
	return h.entries[pos].value, nil
}

// Len reports the number of distinct keys stored in the heap.
func (h *Heap) Len() int { return h.length }
