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
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// InputError wraps a failure reading a character or decimal number from
// the program's input stream.
type InputError struct {
	cause error
}

func (e InputError) Error() string { return "input: " + e.cause.Error() }
func (e InputError) Unwrap() error { return e.cause }

// engineIO bundles the resolved input/output streams an Engine reads and
// writes through for printchar/printnum/inputchar/inputnum. Whitespace I/O
// is byte-oriented, not rune-oriented: printchar/inputchar move exactly one
// byte, matching the original interpreter's putchar/getchar.
type engineIO struct {
	in  *bufio.Reader
	out io.Writer
}

func newEngineIO(in io.Reader, out io.Writer) *engineIO {
	return &engineIO{in: bufio.NewReader(in), out: out}
}

func (e *engineIO) printChar(v BigInt) error {
	// Low byte in two's complement; 2^30 is a multiple of 256, so for the
	// large form it follows from the lowest digit and the sign.
	var b byte
	if v.isSmall() {
		b = byte(v.small)
	} else {
		b = byte(v.digits[0])
		if v.neg {
			b = -b
		}
	}
	if _, err := e.out.Write([]byte{b}); err != nil {
		return errors.Wrap(err, "printchar")
	}
	return nil
}

func (e *engineIO) printNum(v BigInt) error {
	if _, err := io.WriteString(e.out, v.String()); err != nil {
		return errors.Wrap(err, "printnum")
	}
	return nil
}

func (e *engineIO) inputChar() (BigInt, error) {
	b, err := e.in.ReadByte()
	if err != nil {
		return Zero, InputError{cause: err}
	}
	return FromInt32(int32(b)), nil
}

func (e *engineIO) inputNum() (BigInt, error) {
	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		return Zero, InputError{cause: err}
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	v, perr := ParseDecimal(line)
	if perr != nil {
		return Zero, InputError{cause: perr}
	}
	return v, nil
}
