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

import "strconv"

// UnterminatedError is raised when the source ends in the middle of an
// opcode token or a push/copy/slide/label parameter.
type UnterminatedError struct {
	Pos int
}

func (e UnterminatedError) Error() string {
	return "unexpected end of input at byte " + strconv.Itoa(e.Pos)
}

// UnknownOpcodeError is raised when four significant characters have been
// read without matching any of the 24 opcode token sequences.
type UnknownOpcodeError struct {
	Pos int
}

func (e UnknownOpcodeError) Error() string {
	return "no opcode matches the token starting at byte " + strconv.Itoa(e.Pos)
}

// EmptyProgramError is raised when the source contains zero commands.
type EmptyProgramError struct{}

func (EmptyProgramError) Error() string {
	return "source contains no commands"
}

// DuplicateLabelError is raised when a label command defines the same
// Label twice.
type DuplicateLabelError struct {
	Label string
}

func (e DuplicateLabelError) Error() string {
	return "label " + e.Label + " defined more than once"
}

// UndefinedLabelError is raised when a call/jump/jumpifzero/jumpifnegative
// references a Label that no label command ever defines.
type UndefinedLabelError struct {
	Label string
}

func (e UndefinedLabelError) Error() string {
	return "reference to undefined label " + e.Label
}

// AlreadyResolvedError is raised by Resolve on a Program whose Resolved
// flag is already set.
type AlreadyResolvedError struct{}

func (AlreadyResolvedError) Error() string {
	return "program has already been resolved"
}
