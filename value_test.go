package lox

import "testing"

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		value Value
		want  bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0.0, true},
		{"", true},
		{"x", true},
	}
	for _, tc := range cases {
		if got := isTruthy(tc.value); got != tc.want {
			t.Errorf("isTruthy(%#v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestValuesEqual(t *testing.T) {
	cases := []struct {
		a, b Value
		want bool
	}{
		{nil, nil, true},
		{nil, false, false},
		{1.0, 1.0, true},
		{1.0, 2.0, false},
		{"a", "a", true},
		{"a", 1.0, false},
	}
	for _, tc := range cases {
		if got := valuesEqual(tc.a, tc.b); got != tc.want {
			t.Errorf("valuesEqual(%#v, %#v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{nil, "nil"},
		{true, "true"},
		{false, "false"},
		{1.0, "1"},
		{1.5, "1.5"},
		{"hello", "hello"},
	}
	for _, tc := range cases {
		if got := stringify(tc.value); got != tc.want {
			t.Errorf("stringify(%#v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}
