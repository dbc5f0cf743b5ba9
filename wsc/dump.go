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

package wsc

import (
	"fmt"
	"io"

	"github.com/CensoredUsername/whitespace/vm"
)

// Dump writes a disassembly-style listing of p to w: one line per command,
// the mnemonic followed by its resolved offset or decoded parameter.
func Dump(p *vm.Program, w io.Writer) {
	for i, cmd := range p.Commands {
		switch {
		case vm.TakesInt(cmd.Op):
			fmt.Fprintf(w, "%4d  %-16s %s\n", i, cmd.Op, cmd.Int.String())
		case vm.TakesLabel(cmd.Op):
			if p.Resolved {
				fmt.Fprintf(w, "%4d  %-16s -> %d\n", i, cmd.Op, cmd.Offset)
			} else {
				fmt.Fprintf(w, "%4d  %-16s %s\n", i, cmd.Op, cmd.Lbl.String())
			}
		default:
			fmt.Fprintf(w, "%4d  %s\n", i, cmd.Op)
		}
	}
}
