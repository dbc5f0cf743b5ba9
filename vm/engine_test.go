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

import (
	"bytes"
	"strings"
	"testing"
)

func intCmd(op Opcode, v int32) Command {
	n := FromInt32(v)
	return Command{Op: op, Int: &n}
}

func jumpCmd(op Opcode, offset int) Command {
	return Command{Op: op, Offset: offset}
}

func runProgram(t *testing.T, cmds []Command, in string) (string, []error, error) {
	t.Helper()
	p := &Program{Resolved: true, Commands: cmds}
	var out bytes.Buffer
	e := NewEngine(p, strings.NewReader(in), &out)
	warnings, err := e.Run()
	return out.String(), warnings, err
}

func TestEnginePrintChar(t *testing.T) {
	out, _, err := runProgram(t, []Command{
		intCmd(OpPush, 'A'),
		{Op: OpPrintChar},
		{Op: OpEndProgram},
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "A" {
		t.Fatalf("output = %q, want %q", out, "A")
	}
}

func TestEngineArithmeticAndPrintNum(t *testing.T) {
	out, _, err := runProgram(t, []Command{
		intCmd(OpPush, 3),
		intCmd(OpPush, 4),
		{Op: OpAdd},
		{Op: OpPrintNum},
		{Op: OpEndProgram},
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "7" {
		t.Fatalf("output = %q, want %q", out, "7")
	}
}

func TestEngineHeapStoreLoad(t *testing.T) {
	out, _, err := runProgram(t, []Command{
		intCmd(OpPush, 1),   // key
		intCmd(OpPush, 100), // value
		{Op: OpSet},
		intCmd(OpPush, 1), // key
		{Op: OpGet},
		{Op: OpPrintNum},
		{Op: OpEndProgram},
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "100" {
		t.Fatalf("output = %q, want %q", out, "100")
	}
}

func TestEngineCallAndReturn(t *testing.T) {
	// 0: push 1            -- pushed before the call
	// 1: call -> 4
	// 2: printnum          -- resumed here after endsubroutine
	// 3: endprogram
	// 4: push 41
	// 5: add
	// 6: endsubroutine
	out, _, err := runProgram(t, []Command{
		intCmd(OpPush, 1),
		jumpCmd(OpCall, 4),
		{Op: OpPrintNum},
		{Op: OpEndProgram},
		intCmd(OpPush, 41),
		{Op: OpAdd},
		{Op: OpEndSubroutine},
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "42" {
		t.Fatalf("output = %q, want %q", out, "42")
	}
}

func TestEngineJumpIfZero(t *testing.T) {
	// push 0; jumpifzero -> 4 (skip the push 1 at 2 and printnum at 3); push 9; printnum; endprogram
	out, _, err := runProgram(t, []Command{
		intCmd(OpPush, 0),
		jumpCmd(OpJumpIfZero, 4),
		intCmd(OpPush, 1),
		{Op: OpPrintNum},
		intCmd(OpPush, 9),
		{Op: OpPrintNum},
		{Op: OpEndProgram},
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "9" {
		t.Fatalf("output = %q, want %q", out, "9")
	}
}

func TestEngineDivisionByZeroIsFatal(t *testing.T) {
	_, _, err := runProgram(t, []Command{
		intCmd(OpPush, 1),
		intCmd(OpPush, 0),
		{Op: OpDivide},
		{Op: OpEndProgram},
	}, "")
	if err == nil {
		t.Fatal("expected a fatal RuntimeError wrapping DivideByZeroError")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
}

func TestEngineEndProgramWithNonEmptyCallstackWarns(t *testing.T) {
	_, warnings, err := runProgram(t, []Command{
		jumpCmd(OpCall, 1),
		{Op: OpEndProgram},
	}, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
}

func TestEngineInputCharDoesNotPopKey(t *testing.T) {
	out, _, err := runProgram(t, []Command{
		intCmd(OpPush, 7), // key, left on the stack by inputchar
		{Op: OpInputChar},
		{Op: OpDiscard}, // discards the key pushed above
		intCmd(OpPush, 7),
		{Op: OpGet},
		{Op: OpPrintChar},
		{Op: OpEndProgram},
	}, "Z")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Z" {
		t.Fatalf("output = %q, want %q", out, "Z")
	}
}

func TestEngineHeapAccessor(t *testing.T) {
	p := &Program{Resolved: true, Commands: []Command{
		intCmd(OpPush, 1),
		intCmd(OpPush, 100),
		{Op: OpSet},
		{Op: OpEndProgram},
	}}
	e := NewEngine(p, strings.NewReader(""), &bytes.Buffer{})
	if _, err := e.Run(); err != nil {
		t.Fatal(err)
	}
	v, err := e.Heap().Get(FromInt32(1))
	if err != nil || !v.Equal(FromInt32(100)) {
		t.Fatalf("Heap().Get(1) = %v, %v; want 100, nil", v, err)
	}
}

func TestEngineUnresolvedProgramIsFatal(t *testing.T) {
	p := &Program{Resolved: false, Commands: []Command{{Op: OpEndProgram}}}
	e := NewEngine(p, strings.NewReader(""), &bytes.Buffer{})
	if _, err := e.Run(); err == nil {
		t.Fatal("expected NotResolvedError")
	}
}
