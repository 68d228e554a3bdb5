package lox

import "strconv"

// Value is a Lox runtime value: nil, bool, float64 (number), string, or
// Callable. Unlike pongo2's Value (a reflect.Value wrapper able to hold any
// Go type reachable from a user-supplied Context), Lox's value set is closed
// by the grammar — a plain `any` with type-switch helpers is the idiomatic
// fit here; a reflect-based wrapper would buy nothing since there is no
// foreign-type bridging to do.
type Value = any

// isTruthy implements §4.5: nil and false are falsey, everything else
// (including 0 and "") is truthy.
func isTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// valuesEqual implements Lox equality: nil == nil is true, nil compared to
// anything else is false, otherwise plain Go equality (no coercion). Two
// NaN numbers compare unequal, matching IEEE-754.
func valuesEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aIsNum := a.(float64)
	bn, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		return an == bn
	}
	return a == b
}

// stringify implements §4.5's Stringify: numbers drop a trailing ".0",
// booleans print as true/false, nil prints as "nil", strings print
// verbatim.
func stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case float64:
		text := strconv.FormatFloat(val, 'f', -1, 64)
		if len(text) >= 2 && text[len(text)-2:] == ".0" {
			text = text[:len(text)-2]
		}
		return text
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case Callable:
		return val.String()
	default:
		return "nil"
	}
}

func isNumber(v Value) (float64, bool) {
	n, ok := v.(float64)
	return n, ok
}

func isString(v Value) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
