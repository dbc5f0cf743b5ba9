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
	"strconv"
	"testing"
)

func TestFromInt32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 1 << 29, -(1 << 29), 1 << 31 / 2, -(1 << 31 / 2)} {
		want := strconv.FormatInt(int64(v), 10)
		if got := FromInt32(v).String(); got != want {
			t.Errorf("FromInt32(%d).String() = %q, want %q", v, got, want)
		}
	}
}

func TestAddSubtractLargeForm(t *testing.T) {
	a, _ := ParseDecimal("123456789012345678901234567890")
	b, _ := ParseDecimal("1")
	sum := Add(a, b)
	if sum.String() != "123456789012345678901234567891" {
		t.Fatalf("Add gave %s", sum.String())
	}
	back := Subtract(sum, b)
	if !Equal(back, a) {
		t.Fatalf("Subtract did not invert Add: got %s, want %s", back.String(), a.String())
	}
}

func TestMultiplyDivideModulo(t *testing.T) {
	a := FromInt32(123456789)
	b := FromInt32(987654321)
	product := Multiply(a, b)
	q, err := Divide(product, b)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(q, a) {
		t.Fatalf("Divide(a*b, b) = %s, want %s", q.String(), a.String())
	}
	rem, err := Modulo(product, b)
	if err != nil {
		t.Fatal(err)
	}
	if !rem.IsZero() {
		t.Fatalf("Modulo(a*b, b) = %s, want 0", rem.String())
	}
}

func TestDivideByZero(t *testing.T) {
	if _, err := Divide(FromInt32(1), Zero); err == nil {
		t.Fatal("expected DivideByZeroError")
	}
	if _, ok := interface{}(DivideByZeroError{}).(error); !ok {
		t.Fatal("DivideByZeroError must implement error")
	}
}

func TestCompareAndEqual(t *testing.T) {
	a, _ := ParseDecimal("-99999999999999999999")
	b, _ := ParseDecimal("99999999999999999999")
	if Compare(a, b) >= 0 {
		t.Fatal("expected a < b")
	}
	if !Equal(a, Negate(b)) {
		t.Fatal("expected a == -b")
	}
}

func TestFromWhitespaceBits(t *testing.T) {
	// sign=false (positive), magnitude 101 = 5
	got := FromWhitespaceBits([]bool{false, true, false, true})
	if got.String() != "5" {
		t.Fatalf("got %s, want 5", got.String())
	}
	neg := FromWhitespaceBits([]bool{true, true, false, true})
	if neg.String() != "-5" {
		t.Fatalf("got %s, want -5", neg.String())
	}
	if !FromWhitespaceBits(nil).IsZero() {
		t.Fatal("empty payload should decode to zero")
	}
	if !FromWhitespaceBits([]bool{false}).IsZero() {
		t.Fatal("single-bit payload should decode to zero")
	}
}

func TestHashAgreesAcrossForms(t *testing.T) {
	small := FromInt32(42)
	large := FromMagnitude([]uint32{42}, false)
	if !large.IsSmall() {
		t.Fatal("42 should collapse to small form")
	}
	if small.Hash() != large.Hash() {
		t.Fatalf("hash mismatch between forms: %d vs %d", small.Hash(), large.Hash())
	}
}

func TestMethodWrappersMatchFreeFunctions(t *testing.T) {
	a, b := FromInt32(17), FromInt32(5)
	if !a.Add(b).Equal(Add(a, b)) {
		t.Fatal("Add method disagrees with free function")
	}
	if !a.Subtract(b).Equal(Subtract(a, b)) {
		t.Fatal("Subtract method disagrees with free function")
	}
	if !a.Multiply(b).Equal(Multiply(a, b)) {
		t.Fatal("Multiply method disagrees with free function")
	}
}
