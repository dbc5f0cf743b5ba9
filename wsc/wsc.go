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

// Package wsc is the host-facing glue composing asm, serialize and vm into
// the two entry points a Whitespace host needs: Compile and Execute.
package wsc

import (
	"io"

	"github.com/CensoredUsername/whitespace/asm"
	"github.com/CensoredUsername/whitespace/vm"
	"github.com/pkg/errors"
)

// Compile parses and resolves src, returning a Program ready for Execute or
// serialize.Write.
func Compile(src []byte) (*vm.Program, error) {
	p, err := asm.NewParser(src).Parse()
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	if err := asm.Resolve(p); err != nil {
		return nil, errors.Wrap(err, "resolve")
	}
	return p, nil
}

// Result carries the outcome of a completed Execute call: the instruction
// count (for --stats) and any non-fatal warnings the run produced.
type Result struct {
	InstructionCount int64
	Warnings         []error
}

// Execute runs a resolved Program to completion, reading inputchar/inputnum
// from in and writing printchar/printnum to out.
func Execute(p *vm.Program, in io.Reader, out io.Writer) (Result, error) {
	engine := vm.NewEngine(p, in, out)
	warnings, err := engine.Run()
	res := Result{InstructionCount: engine.InstructionCount, Warnings: warnings}
	if err != nil {
		return res, errors.Wrap(err, "execute")
	}
	return res, nil
}
