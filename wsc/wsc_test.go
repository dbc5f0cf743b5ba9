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

package wsc_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/CensoredUsername/whitespace/wsc"
)

// helloA is "push 65; printchar; endprogram" (see asm's parser tests for the
// bit layout), the smallest program that exercises Compile, Execute and
// Dump end to end.
const helloA = "  " + " " + "\t     \t" + "\n" + "\t\n  " + "\n\n\n"

func TestCompileAndExecute(t *testing.T) {
	p, err := wsc.Compile([]byte(helloA))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	res, err := wsc.Execute(p, strings.NewReader(""), &out)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "A" {
		t.Fatalf("output = %q, want %q", out.String(), "A")
	}
	if res.InstructionCount != 3 {
		t.Fatalf("InstructionCount = %d, want 3", res.InstructionCount)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
}

func TestCompileRejectsMalformedSource(t *testing.T) {
	if _, err := wsc.Compile([]byte("this-has-no-whitespace-tokens-at-all")); err == nil {
		t.Fatal("expected a compile error for a source with no commands")
	}
}

// Shows the two entry points a host needs: Compile then Execute.
func ExampleExecute() {
	p, err := wsc.Compile([]byte(helloA))
	if err != nil {
		panic(err)
	}
	if _, err := wsc.Execute(p, strings.NewReader(""), os.Stdout); err != nil {
		panic(err)
	}
	// Output: A
}

func TestDumpListsEveryCommand(t *testing.T) {
	p, err := wsc.Compile([]byte(helloA))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	wsc.Dump(p, &out)
	listing := out.String()
	for _, want := range []string{"push", "65", "printchar", "endprogram"} {
		if !strings.Contains(listing, want) {
			t.Fatalf("dump listing missing %q:\n%s", want, listing)
		}
	}
}
