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

import "strconv"

// RuntimeError wraps a panic recovered from the Engine's dispatch loop,
// recording the program counter that triggered it.
type RuntimeError struct {
	PC    int
	cause error
}

func (e *RuntimeError) Error() string {
	return "whitespace: runtime error at pc=" + strconv.Itoa(e.PC) + ": " + e.cause.Error()
}

func (e *RuntimeError) Unwrap() error { return e.cause }
func (e *RuntimeError) Cause() error  { return e.cause }
