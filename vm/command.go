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

// Command is one parsed instruction. At most one of Int, Lbl or Offset is
// set, depending on TakesInt(Op)/TakesLabel(Op): Int for push/copy/slide,
// Lbl for a symbolic jump target before resolution, Offset for the same
// target once the Program has been resolved.
type Command struct {
	Op     Opcode
	Int    *BigInt
	Lbl    *Label
	Offset int
}

// Program is a sequence of commands, either symbolic (as produced by the
// parser, jump targets held in Lbl) or resolved (jump targets rewritten to
// absolute Offset values by the label resolver, ready for the Engine).
type Program struct {
	Resolved bool
	Commands []Command
}

// NotResolvedError is returned when an Engine is asked to run a Program
// whose labels have not yet been rewritten to offsets.
type NotResolvedError struct{}

func (NotResolvedError) Error() string {
	return "program has not been resolved"
}
