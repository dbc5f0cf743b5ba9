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

package asm

import "github.com/CensoredUsername/whitespace/vm"

const (
	labelMapInitialCapacity = 16
	labelMapResizeFactor    = 4
	labelMapPerturbShift    = 5
)

type labelMapEntry struct {
	key         vm.Label
	value       int
	initialized bool
}

// labelMap is the resolver-internal Label-to-command-index open-addressing
// table, independent of vm.Heap: the key type and hash function differ, and
// nothing outside the resolver needs it.
type labelMap struct {
	entries []labelMapEntry
	length  int
}

func newLabelMap() *labelMap {
	return &labelMap{entries: make([]labelMapEntry, labelMapInitialCapacity)}
}

func (m *labelMap) insertPosition(key vm.Label) int {
	hash := key.Hash()
	perturb := hash
	cap := uint32(len(m.entries))
	position := hash % cap
	for m.entries[position].initialized && !vm.LabelEqual(m.entries[position].key, key) {
		position = (position*5 + 1 + perturb) % cap
		perturb >>= labelMapPerturbShift
	}
	return int(position)
}

func (m *labelMap) needsResize() bool {
	return (m.length+1)*3 > len(m.entries)*2
}

func (m *labelMap) grow() {
	old := m.entries
	m.entries = make([]labelMapEntry, len(old)*labelMapResizeFactor)
	for _, e := range old {
		if !e.initialized {
			continue
		}
		pos := m.insertPosition(e.key)
		m.entries[pos] = e
	}
}

// insert stores index at key, reporting false if key is already present.
func (m *labelMap) insert(key vm.Label, index int) bool {
	if m.needsResize() {
		m.grow()
	}
	pos := m.insertPosition(key)
	if m.entries[pos].initialized {
		return false
	}
	m.entries[pos] = labelMapEntry{key: key, value: index, initialized: true}
	m.length++
	return true
}

// get retrieves the command index stored at key.
func (m *labelMap) get(key vm.Label) (int, bool) {
	pos := m.insertPosition(key)
	if !m.entries[pos].initialized {
		return 0, false
	}
	return m.entries[pos].value, true
}
