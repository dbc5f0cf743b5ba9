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

// Package serialize reads and writes the fixed little-endian binary format
// used to round-trip a vm.Program with encoding/binary.
package serialize

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/CensoredUsername/whitespace/vm"
	"github.com/pkg/errors"
)

const resolvedFlag uint32 = 1

// Write encodes p in the wire format described by SerializationError's
// callers: u32 flags, u32 length, then one command per entry. Label
// parameters are written as a resolved offset when p.Resolved, or as a
// packed label payload otherwise.
func Write(w io.Writer, p *vm.Program) error {
	bw := bufio.NewWriter(w)
	var flags uint32
	if p.Resolved {
		flags = resolvedFlag
	}
	if err := writeU32(bw, flags); err != nil {
		return err
	}
	if err := writeU32(bw, uint32(len(p.Commands))); err != nil {
		return err
	}
	for i := range p.Commands {
		if err := writeCommand(bw, &p.Commands[i], p.Resolved); err != nil {
			return errors.Wrapf(err, "command %d", i)
		}
	}
	return bw.Flush()
}

func writeCommand(w *bufio.Writer, cmd *vm.Command, resolved bool) error {
	if err := w.WriteByte(byte(cmd.Op)); err != nil {
		return err
	}
	switch {
	case vm.TakesInt(cmd.Op):
		return writeBigInt(w, *cmd.Int)
	case vm.TakesLabel(cmd.Op):
		if resolved {
			return writeU32(w, uint32(cmd.Offset))
		}
		return writeLabel(w, *cmd.Lbl)
	}
	return nil
}

func writeBigInt(w *bufio.Writer, v vm.BigInt) error {
	if v.IsSmall() {
		if err := writeU32(w, 0); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, v.Small())
	}
	digits := v.Digits()
	lengthWord := uint32(len(digits))
	if v.Negative() {
		lengthWord |= 0x80000000
	}
	if err := writeU32(w, lengthWord); err != nil {
		return err
	}
	for _, d := range digits {
		if err := writeU32(w, d); err != nil {
			return err
		}
	}
	return nil
}

func writeLabel(w *bufio.Writer, l vm.Label) error {
	if err := writeU32(w, uint32(l.BitLen())); err != nil {
		return err
	}
	_, err := w.Write(l.Bytes())
	return err
}

func writeU32(w io.Writer, v uint32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

// Read decodes a Program previously produced by Write.
func Read(r io.Reader) (*vm.Program, error) {
	br := bufio.NewReader(r)
	flags, err := readU32(br)
	if err != nil {
		return nil, errors.Wrap(err, "reading flags")
	}
	resolved := flags&resolvedFlag != 0

	length, err := readU32(br)
	if err != nil {
		return nil, errors.Wrap(err, "reading length")
	}

	commands := make([]vm.Command, length)
	for i := range commands {
		cmd, err := readCommand(br, resolved)
		if err != nil {
			return nil, errors.Wrapf(err, "command %d", i)
		}
		commands[i] = cmd
	}
	return &vm.Program{Resolved: resolved, Commands: commands}, nil
}

func readCommand(r *bufio.Reader, resolved bool) (vm.Command, error) {
	opByte, err := r.ReadByte()
	if err != nil {
		return vm.Command{}, err
	}
	op := vm.Opcode(opByte)
	if int(op) >= vm.OpcodeCount {
		return vm.Command{}, SerializationError{Reason: "opcode byte out of range"}
	}
	cmd := vm.Command{Op: op}
	switch {
	case vm.TakesInt(op):
		v, err := readBigInt(r)
		if err != nil {
			return vm.Command{}, err
		}
		cmd.Int = &v
	case vm.TakesLabel(op):
		if resolved {
			offset, err := readU32(r)
			if err != nil {
				return vm.Command{}, err
			}
			cmd.Offset = int(offset)
		} else {
			l, err := readLabel(r)
			if err != nil {
				return vm.Command{}, err
			}
			cmd.Lbl = &l
		}
	}
	return cmd, nil
}

func readBigInt(r *bufio.Reader) (vm.BigInt, error) {
	lengthWord, err := readU32(r)
	if err != nil {
		return vm.Zero, err
	}
	if lengthWord == 0 {
		var small int32
		if err := binary.Read(r, binary.LittleEndian, &small); err != nil {
			return vm.Zero, err
		}
		return vm.FromInt32(small), nil
	}
	neg := lengthWord&0x80000000 != 0
	count := lengthWord &^ 0x80000000
	if count > maxSaneLength {
		return vm.Zero, SerializationError{Reason: "bigint digit count exceeds sane bound"}
	}
	digits := make([]uint32, count)
	for i := range digits {
		d, err := readU32(r)
		if err != nil {
			return vm.Zero, err
		}
		digits[i] = d
	}
	return vm.FromMagnitude(digits, neg), nil
}

func readLabel(r *bufio.Reader) (vm.Label, error) {
	bitLen, err := readU32(r)
	if err != nil {
		return vm.Label{}, err
	}
	if bitLen > maxSaneLength*8 {
		return vm.Label{}, SerializationError{Reason: "label bit length exceeds sane bound"}
	}
	byteLen := (int(bitLen) + 7) / 8
	buf := make([]byte, byteLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return vm.Label{}, err
	}
	return vm.LabelFromBytes(int(bitLen), buf), nil
}

func readU32(r io.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

// maxSaneLength bounds digit/byte counts read off the wire so a corrupt
// length word cannot trigger a multi-gigabyte allocation attempt.
const maxSaneLength = math.MaxInt32 / 4
