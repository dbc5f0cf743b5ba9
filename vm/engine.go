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
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// OutOfBoundsError is raised when pc runs past the end of the command
// sequence without an endprogram having been reached.
type OutOfBoundsError struct {
	PC, Length int
}

func (e OutOfBoundsError) Error() string {
	return "pc " + strconv.Itoa(e.PC) + " out of bounds for program of length " + strconv.Itoa(e.Length)
}

// Engine executes a resolved Program: fetch, advance, dispatch. One Engine
// runs one program to completion; it is not reusable across programs.
type Engine struct {
	pc        int
	stack     *Stack
	callstack *CallStack
	heap      *Heap
	program   *Program
	io        *engineIO

	// InstructionCount is the number of commands dispatched so far.
	InstructionCount int64
}

// NewEngine builds an Engine ready to run a resolved program, reading
// inputchar/inputnum from in and writing printchar/printnum to out.
func NewEngine(p *Program, in io.Reader, out io.Writer) *Engine {
	return &Engine{
		stack:     NewStack(),
		callstack: NewCallStack(),
		heap:      NewHeap(),
		program:   p,
		io:        newEngineIO(in, out),
	}
}

// Heap exposes the engine's heap, e.g. for a debug dump after a run.
func (e *Engine) Heap() *Heap { return e.heap }

// Run executes the program to completion. It returns a nil error and any
// accumulated non-fatal warnings on a clean endprogram exit, or a non-nil
// error (typically *RuntimeError) on a fatal condition.
func (e *Engine) Run() (warnings []error, err error) {
	if !e.program.Resolved {
		return nil, NotResolvedError{}
	}
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = &RuntimeError{PC: e.pc, cause: errors.WithStack(cause)}
		}
	}()

	commands := e.program.Commands
	for {
		if e.pc >= len(commands) {
			return warnings, OutOfBoundsError{PC: e.pc, Length: len(commands)}
		}
		cmd := commands[e.pc]
		e.pc++
		e.InstructionCount++

		halted, warn, ioErr := e.dispatch(cmd)
		if ioErr != nil {
			return warnings, ioErr
		}
		if warn != nil {
			warnings = append(warnings, warn)
		}
		if halted {
			return warnings, nil
		}
	}
}

// dispatch executes one command. Precondition violations panic with a
// typed error, caught by the recover in Run; only I/O failures are
// returned directly, since they are not programming-error panics.
func (e *Engine) dispatch(cmd Command) (halted bool, warning error, ioErr error) {
	switch cmd.Op {
	case OpPush:
		e.stack.Push(*cmd.Int)

	case OpDuplicate:
		e.stack.Push(e.stack.Top())

	case OpCopy:
		n := indexParam(cmd.Int)
		e.stack.Push(e.stack.At(n))

	case OpSwap:
		e.stack.Require(2)
		a := e.stack.Pop()
		b := e.stack.Pop()
		e.stack.Push(a)
		e.stack.Push(b)

	case OpDiscard:
		e.stack.Pop()

	case OpSlide:
		n := indexParam(cmd.Int)
		e.stack.Slide(n)

	case OpAdd:
		e.stack.Require(2)
		b := e.stack.Pop()
		a := e.stack.Pop()
		e.stack.Push(a.Add(b))

	case OpSubtract:
		e.stack.Require(2)
		b := e.stack.Pop()
		a := e.stack.Pop()
		e.stack.Push(a.Subtract(b))

	case OpMultiply:
		e.stack.Require(2)
		b := e.stack.Pop()
		a := e.stack.Pop()
		e.stack.Push(a.Multiply(b))

	case OpDivide:
		e.stack.Require(2)
		b := e.stack.Pop()
		a := e.stack.Pop()
		q, err := a.Divide(b)
		if err != nil {
			panic(err)
		}
		e.stack.Push(q)

	case OpModulo:
		e.stack.Require(2)
		b := e.stack.Pop()
		a := e.stack.Pop()
		m, err := a.Modulo(b)
		if err != nil {
			panic(err)
		}
		e.stack.Push(m)

	case OpSet:
		e.stack.Require(2)
		value := e.stack.Pop()
		key := e.stack.Pop()
		e.heap.Set(key, value)

	case OpGet:
		key := e.stack.Pop()
		value, err := e.heap.Get(key)
		if err != nil {
			panic(err)
		}
		e.stack.Push(value)

	case OpLabel:
		// no-op at run time

	case OpCall:
		e.callstack.Push(e.pc)
		e.pc = cmd.Offset

	case OpJump:
		e.pc = cmd.Offset

	case OpJumpIfZero:
		v := e.stack.Pop()
		if v.IsZero() {
			e.pc = cmd.Offset
		}

	case OpJumpIfNegative:
		v := e.stack.Pop()
		if v.IsNegative() {
			e.pc = cmd.Offset
		}

	case OpEndSubroutine:
		e.pc = e.callstack.Pop()

	case OpEndProgram:
		if e.callstack.Len() != 0 {
			warning = nonEmptyCallstackWarning{Depth: e.callstack.Len()}
		}
		return true, warning, nil

	case OpPrintChar:
		v := e.stack.Pop()
		if err := e.io.printChar(v); err != nil {
			return false, nil, err
		}

	case OpPrintNum:
		v := e.stack.Pop()
		if err := e.io.printNum(v); err != nil {
			return false, nil, err
		}

	case OpInputChar:
		key := e.stack.Top()
		c, err := e.io.inputChar()
		if err != nil {
			return false, nil, err
		}
		e.heap.Set(key, c)

	case OpInputNum:
		key := e.stack.Top()
		n, err := e.io.inputNum()
		if err != nil {
			return false, nil, err
		}
		e.heap.Set(key, n)

	default:
		panic(errors.Errorf("unhandled opcode %s", cmd.Op))
	}
	return false, nil, nil
}

// indexParam converts a copy/slide BigInt parameter to a machine int. A
// magnitude too large to be a real stack position saturates to math.MaxInt32,
// which Stack.At/Slide then rejects as out of range.
func indexParam(v *BigInt) int {
	return int(v.ToInt32Saturating())
}

// nonEmptyCallstackWarning is the non-fatal condition from spec: endprogram
// reached with pending call frames.
type nonEmptyCallstackWarning struct {
	Depth int
}

func (w nonEmptyCallstackWarning) Error() string {
	return "endprogram with non-empty call stack (depth " + strconv.Itoa(w.Depth) + ")"
}
