package portal

import (
	"math"
	"testing"
)

type color int

func (c color) String() string { return [...]string{"red", "green"}[c] }

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "abc", "abc"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"float", 2.5, "2.5"},
		{"integral float", 3.0, "3.0"},
		{"negative zero", math.Copysign(0, -1), "-0.0"},
		{"large float", 1234567.0, "1234567.0"},
		{"exponent float", 1e16, "1e+16"},
		{"small float", 0.0001, "0.0001"},
		{"tiny float", 1e-05, "1e-05"},
		{"infinity", math.Inf(-1), "-inf"},
		{"bool", true, "true"},
		{"tuple", []any{1, "a", 2.5}, "1,a,2.5"},
		{"stringer", color(1), "green"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIndexOf(t *testing.T) {
	if got := IndexOf(); got != NoIndex {
		t.Errorf("IndexOf() = %q, want NoIndex", got)
	}
	if got := IndexOf("a"); got != "a" {
		t.Errorf("IndexOf(a) = %q, want a", got)
	}
	if got := IndexOf(1, 2); got != "1,2" {
		t.Errorf("IndexOf(1, 2) = %q, want 1,2", got)
	}
}
