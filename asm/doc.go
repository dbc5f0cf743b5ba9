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

// Package asm turns a Whitespace source byte buffer into a resolved
// vm.Program.
//
// Whitespace source is any byte buffer; only SPACE, TAB and LF are
// significant, every other byte is a comment and may appear anywhere,
// including inside a parameter. Opcodes are encoded as a run of 2 to 4
// significant characters forming a prefix-free code (see vm.MatchOpcodePrefix);
// push, copy and slide additionally take a signed-binary integer parameter,
// and label, call, jump, jumpifzero and jumpifnegative take a label
// parameter, both terminated by LF.
//
//	p := asm.NewParser(src)
//	prog, err := p.Parse()
//	if err != nil {
//		// malformed source: unterminated, unknown opcode or no commands
//	}
//	// prog.Commands is symbolic: jump-family commands hold a Label, not an offset.
//	if err := asm.Resolve(prog); err != nil {
//		// duplicate or undefined label
//	}
//	// prog is now ready for vm.NewEngine.
package asm
