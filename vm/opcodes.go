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

// Opcode identifies one of the 24 Whitespace commands.
type Opcode uint8

// The 24 Whitespace opcodes, in the fixed order that indexes
// opcodePrefixes, takesInt and takesLabel.
const (
	OpPush Opcode = iota
	OpDuplicate
	OpCopy
	OpSwap
	OpDiscard
	OpSlide

	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo

	OpSet
	OpGet

	OpLabel
	OpCall
	OpJump
	OpJumpIfZero
	OpJumpIfNegative
	OpEndSubroutine
	OpEndProgram

	OpPrintChar
	OpPrintNum
	OpInputChar
	OpInputNum

	opcodeCount
)

var opcodeNames = [opcodeCount]string{
	OpPush:           "push",
	OpDuplicate:      "duplicate",
	OpCopy:           "copy",
	OpSwap:           "swap",
	OpDiscard:        "discard",
	OpSlide:          "slide",
	OpAdd:            "add",
	OpSubtract:       "subtract",
	OpMultiply:       "multiply",
	OpDivide:         "divide",
	OpModulo:         "modulo",
	OpSet:            "set",
	OpGet:            "get",
	OpLabel:          "label",
	OpCall:           "call",
	OpJump:           "jump",
	OpJumpIfZero:     "jumpifzero",
	OpJumpIfNegative: "jumpifnegative",
	OpEndSubroutine:  "endsubroutine",
	OpEndProgram:     "endprogram",
	OpPrintChar:      "printchar",
	OpPrintNum:       "printnum",
	OpInputChar:      "inputchar",
	OpInputNum:       "inputnum",
}

// OpcodeCount is the number of distinct opcodes, for bounds-checking an
// opcode byte read off the wire.
const OpcodeCount = int(opcodeCount)

// String renders the opcode's mnemonic name, e.g. for disassembly.
func (op Opcode) String() string {
	if int(op) < 0 || op >= opcodeCount {
		return "invalid"
	}
	return opcodeNames[op]
}

// opcodePrefixes holds the literal space/tab/linefeed token sequence for
// each opcode, in the same order as the Opcode constants. A parser reads
// significant characters and matches the shortest prefix that uniquely
// identifies one of these.
var opcodePrefixes = [opcodeCount]string{
	OpPush:      "  ",
	OpDuplicate: " \n ",
	OpCopy:      " \t ",
	OpSwap:      " \n\t",
	OpDiscard:   " \n\n",
	OpSlide:     " \t\n",

	OpAdd:      "\t   ",
	OpSubtract: "\t  \t",
	OpMultiply: "\t  \n",
	OpDivide:   "\t \t ",
	OpModulo:   "\t \t\t",

	OpSet: "\t\t ",
	OpGet: "\t\t\t",

	OpLabel:          "\n  ",
	OpCall:           "\n \t",
	OpJump:           "\n \n",
	OpJumpIfZero:     "\n\t ",
	OpJumpIfNegative: "\n\t\t",
	OpEndSubroutine:  "\n\t\n",
	OpEndProgram:     "\n\n\n",

	OpPrintChar: "\t\n  ",
	OpPrintNum:  "\t\n \t",
	OpInputChar: "\t\n\t ",
	OpInputNum:  "\t\n\t\t",
}

// takesInt reports whether op carries a BigInt parameter.
func takesInt(op Opcode) bool {
	switch op {
	case OpPush, OpCopy, OpSlide:
		return true
	default:
		return false
	}
}

// takesLabel reports whether op carries a Label parameter.
func takesLabel(op Opcode) bool {
	switch op {
	case OpLabel, OpCall, OpJump, OpJumpIfZero, OpJumpIfNegative:
		return true
	default:
		return false
	}
}

// TakesInt reports whether op is parsed/serialized with a BigInt parameter.
func TakesInt(op Opcode) bool { return takesInt(op) }

// TakesLabel reports whether op is parsed/serialized with a Label
// parameter (symbolic before resolution, a resolved offset afterwards).
func TakesLabel(op Opcode) bool { return takesLabel(op) }

// MaxOpcodePrefixLen is the length of the longest entry in opcodePrefixes;
// a parser reading significant characters one at a time without a match by
// this many characters has an unknown opcode.
const MaxOpcodePrefixLen = 4

// MatchOpcodePrefix reports the opcode whose token sequence equals buf
// exactly, if any. Whitespace's 24 opcodes form a prefix-free code, so an
// exact-length match is never ambiguous.
func MatchOpcodePrefix(buf string) (Opcode, bool) {
	for op, prefix := range opcodePrefixes {
		if prefix == buf {
			return Opcode(op), true
		}
	}
	return 0, false
}
