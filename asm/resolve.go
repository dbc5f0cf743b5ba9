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

// Resolve rewrites every label command's Offset to its own index and every
// call/jump/jumpifzero/jumpifnegative command's Offset to the index of the
// label it references, mutating p in place and setting p.Resolved.
//
// Resolving an already-resolved Program is fatal.
func Resolve(p *vm.Program) error {
	if p.Resolved {
		return AlreadyResolvedError{}
	}

	labels := newLabelMap()
	var references []int

	for i := range p.Commands {
		cmd := &p.Commands[i]
		switch {
		case cmd.Op == vm.OpLabel:
			if !labels.insert(*cmd.Lbl, i) {
				return DuplicateLabelError{Label: cmd.Lbl.String()}
			}
			cmd.Offset = i
			cmd.Lbl = nil
		case vm.TakesLabel(cmd.Op):
			references = append(references, i)
		}
	}

	for _, i := range references {
		cmd := &p.Commands[i]
		index, ok := labels.get(*cmd.Lbl)
		if !ok {
			return UndefinedLabelError{Label: cmd.Lbl.String()}
		}
		cmd.Offset = index
		cmd.Lbl = nil
	}

	p.Resolved = true
	return nil
}
