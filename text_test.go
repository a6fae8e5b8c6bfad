// Copyright (c) 2026 bigint contributors
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import "testing"

func TestParseAndFormatRoundTrip(t *testing.T) {
	tests := []string{"0", "1", "-1", "123456789012345678901234567890", "-987654321098765432109876543210"}
	for _, s := range tests {
		v, err := Parse(s, 10)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := v.ToText(); got != s {
			t.Errorf("Parse(%q).ToText() = %q", s, got)
		}
	}
}

func TestParseSignPrefixes(t *testing.T) {
	v, err := Parse("+42", 10)
	if err != nil {
		t.Fatalf("Parse(+42): %v", err)
	}
	if v.ToI64() != 42 {
		t.Errorf("Parse(+42) = %d, want 42", v.ToI64())
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []string{"", "+", "-", "12a4", "1 2", "abc", "99"}
	for _, s := range tests {
		radix := 10
		if s == "99" {
			radix = 8 // '9' is not a valid base-8 digit
		}
		if _, err := Parse(s, radix); err == nil {
			t.Errorf("Parse(%q, %d) should have failed", s, radix)
		}
	}
}

func TestParseRejectsBadRadix(t *testing.T) {
	if _, err := Parse("10", 1); err == nil {
		t.Errorf("Parse with radix 1 should fail")
	}
	if _, err := Parse("10", 37); err == nil {
		t.Errorf("Parse with radix 37 should fail")
	}
}

func TestToTextRadix(t *testing.T) {
	tests := []struct {
		v     int64
		radix int
		want  string
	}{
		{255, 16, "ff"},
		{-255, 16, "-ff"},
		{0, 2, "0"},
		{10, 2, "1010"},
		{35, 36, "z"},
	}
	for _, tt := range tests {
		got := FromI64(tt.v).ToTextRadix(tt.radix)
		if got != tt.want {
			t.Errorf("%d.ToTextRadix(%d) = %q, want %q", tt.v, tt.radix, got, tt.want)
		}
	}
}

func TestParseAllRadixes(t *testing.T) {
	for radix := 2; radix <= 36; radix++ {
		v := FromI64(int64(radix*7 + 3))
		text := v.ToTextRadix(radix)
		back, err := Parse(text, radix)
		if err != nil {
			t.Fatalf("Parse(%q, %d): %v", text, radix, err)
		}
		if !back.Equal(v) {
			t.Errorf("radix %d round trip: got %s, want %s", radix, back.ToText(), v.ToText())
		}
	}
}

func TestStringMatchesToText(t *testing.T) {
	v := FromI64(-777)
	if v.String() != v.ToText() {
		t.Errorf("String() = %q, ToText() = %q", v.String(), v.ToText())
	}
}
