// Copyright (c) 2026 bigint contributors
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"math"
	"testing"
)

func TestAddSubtractRoundTrip(t *testing.T) {
	tests := []struct {
		a, b int64
	}{
		{1, 2}, {-1, -2}, {5, -3}, {-5, 3}, {0, 7}, {7, 0}, {-7, 7}, {math.MaxInt64, 1},
	}
	for _, tt := range tests {
		a, b := FromI64(tt.a), FromI64(tt.b)
		sum := Add(a, b)
		if sum.ToI64() != tt.a+tt.b {
			t.Errorf("Add(%d, %d) = %s, want %d", tt.a, tt.b, sum.ToText(), tt.a+tt.b)
		}
		back := Subtract(sum, b)
		if !back.Equal(a) {
			t.Errorf("(%d+%d)-%d = %s, want %d", tt.a, tt.b, tt.b, back.ToText(), tt.a)
		}
	}
}

func TestMultiplyWordMinInt64(t *testing.T) {
	v := FromI64(2)
	got := v.MultiplyWord(math.MinInt64)
	want := Multiply(v, FromI64(math.MinInt64))
	if !got.Equal(want) {
		t.Errorf("2 * MinInt64 = %s, want %s", got.ToText(), want.ToText())
	}

	neg := FromI64(-2)
	gotNeg := neg.MultiplyWord(math.MinInt64)
	wantNeg := Multiply(neg, FromI64(math.MinInt64))
	if !gotNeg.Equal(wantNeg) {
		t.Errorf("-2 * MinInt64 = %s, want %s", gotNeg.ToText(), wantNeg.ToText())
	}
}

func TestMultiplySignsAndZero(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{3, 4, 12}, {-3, 4, -12}, {3, -4, -12}, {-3, -4, 12}, {0, 9, 0}, {9, 0, 0},
	}
	for _, tt := range tests {
		got := Multiply(FromI64(tt.a), FromI64(tt.b))
		if got.ToI64() != tt.want {
			t.Errorf("Multiply(%d, %d) = %d, want %d", tt.a, tt.b, got.ToI64(), tt.want)
		}
	}
}

func TestMultiplyLargeKnownProduct(t *testing.T) {
	a, err := Parse("123456789012345678901234567890", 10)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse("987654321098765432109876543210", 10)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	product := Multiply(a, b)
	want, err := Parse("121932631137021795226185032733622923332237463801111263526900", 10)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !product.Equal(want) {
		t.Errorf("large multiply mismatch:\n got  %s\n want %s", product.ToText(), want.ToText())
	}
}
