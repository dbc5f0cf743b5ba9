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

// Parser tokenizes a Whitespace source buffer into a symbolic vm.Program.
// Every byte that is not SPACE, TAB or LF is a comment and is skipped,
// including inside parameters: only the run of significant characters
// matters.
type Parser struct {
	src []byte
	pos int
}

// NewParser returns a Parser reading from src. src is not copied or
// retained beyond the call to Parse.
func NewParser(src []byte) *Parser {
	return &Parser{src: src}
}

// Parse consumes the whole source and returns the symbolic (unresolved)
// Program it describes.
func (p *Parser) Parse() (*vm.Program, error) {
	var commands []vm.Command
	for {
		op, ok, err := p.nextOpcode()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		cmd := vm.Command{Op: op}
		switch {
		case vm.TakesInt(op):
			bits, err := p.readParameter()
			if err != nil {
				return nil, err
			}
			v := vm.FromWhitespaceBits(bits)
			cmd.Int = &v
		case vm.TakesLabel(op):
			bits, err := p.readParameter()
			if err != nil {
				return nil, err
			}
			l := vm.NewLabel(bits)
			cmd.Lbl = &l
		}
		commands = append(commands, cmd)
	}
	if len(commands) == 0 {
		return nil, EmptyProgramError{}
	}
	return &vm.Program{Commands: commands}, nil
}

// nextSignificant scans forward from pos for the next SPACE/TAB/LF byte,
// skipping everything else as a comment.
func (p *Parser) nextSignificant(pos int) (byte, int, bool) {
	for pos < len(p.src) {
		c := p.src[pos]
		if c == ' ' || c == '\t' || c == '\n' {
			return c, pos + 1, true
		}
		pos++
	}
	return 0, pos, false
}

// nextOpcode reads significant characters until they exactly match one of
// the 24 opcode token sequences. Returns ok=false with a nil error only at
// a clean end of input between commands.
func (p *Parser) nextOpcode() (vm.Opcode, bool, error) {
	start := p.pos
	buf := make([]byte, 0, vm.MaxOpcodePrefixLen)
	for {
		c, next, ok := p.nextSignificant(p.pos)
		if !ok {
			if len(buf) == 0 {
				return 0, false, nil
			}
			return 0, false, UnterminatedError{Pos: start}
		}
		p.pos = next
		buf = append(buf, c)
		if len(buf) >= 2 {
			if op, ok := vm.MatchOpcodePrefix(string(buf)); ok {
				return op, true, nil
			}
		}
		if len(buf) == vm.MaxOpcodePrefixLen {
			return 0, false, UnknownOpcodeError{Pos: start}
		}
	}
}

// readParameter reads significant characters up to and including the
// terminating LF, returning the bits before it (SPACE=false, TAB=true).
func (p *Parser) readParameter() ([]bool, error) {
	start := p.pos
	var bits []bool
	for {
		c, next, ok := p.nextSignificant(p.pos)
		if !ok {
			return nil, UnterminatedError{Pos: start}
		}
		p.pos = next
		if c == '\n' {
			return bits, nil
		}
		bits = append(bits, c == '\t')
	}
}
