package lox

import "time"

// registerBuiltins defines every native function exposed to Lox programs
// (§4.5, §6: "clock()"). Registered lowercase to match Lox program
// convention — §9 flags that one source snapshot used "Clock" and calls
// that a mistake to not repeat.
func registerBuiltins(globals *Environment) {
	globals.defineGlobal("clock", &nativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(_ *Interpreter, _ []Value) (Value, error) {
			// Seconds since the Unix epoch as a float, not just the
			// wall-clock seconds field (§9's open question): this gives
			// monotonically increasing values across a run instead of
			// wrapping every 60 seconds.
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	})
}
