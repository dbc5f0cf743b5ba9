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

package serialize

// SerializationError is raised when a stream fails a structural check
// before an io error would even occur: an opcode byte out of range, or a
// length that cannot possibly fit in the remaining format.
type SerializationError struct {
	Reason string
}

func (e SerializationError) Error() string {
	return "serialize: " + e.Reason
}
