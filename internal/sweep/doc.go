// Package sweep enumerates every boolean assignment of a set of test
// parameters and renders each one, together with a fixed set of constant
// parameters, into a textual parameter block.
//
// The enumeration is a binary counter over the variable parameters: the first
// declared parameter is the least significant bit, so it toggles on every
// step, the second every two steps, and parameter i every 2^i steps. The first
// block always has every test parameter false and the last has every one true.
//
// Example:
//
//	seq := sweep.NewSequence(
//	    []string{"a", "b"},
//	    []sweep.Param{{Name: "x", Value: true}},
//	)
//	for i, block := range seq.All() {
//	    fmt.Printf("--- %d\n%s", i, block)
//	}
//
// A Sequence is single-pass and keeps only O(k) state between steps, so it is
// safe to use with parameter counts whose full grid would not fit in memory.
package sweep
