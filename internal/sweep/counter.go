package sweep

import "fmt"

// MaxVariables is the largest number of test parameters a Counter accepts.
// The remaining count is 2^k and must fit in a uint64.
const MaxVariables = 63

// Param is a named boolean parameter value.
type Param struct {
	Name  string
	Value bool
}

// Counter walks through all 2^k boolean assignments of k named parameters in
// binary counting order.
//
// A Counter is not safe for concurrent use.
type Counter struct {
	params    []Param
	remaining uint64
}

// NewCounter creates a counter over the given parameter names with every
// value initialised to false.
//
// It panics if more than MaxVariables names are given.
func NewCounter(names []string) *Counter {
	if len(names) > MaxVariables {
		panic(fmt.Sprintf("sweep: %d test parameters exceeds the limit of %d", len(names), MaxVariables))
	}

	params := make([]Param, len(names))
	for i, name := range names {
		params[i] = Param{Name: name}
	}

	return &Counter{
		params:    params,
		remaining: uint64(1) << len(names),
	}
}

// HasNext reports whether the current assignment has not been consumed yet.
func (c *Counter) HasNext() bool {
	return c.remaining > 0
}

// Remaining returns how many assignments are left, including the current one.
func (c *Counter) Remaining() uint64 {
	return c.remaining
}

// Len returns the number of parameters the counter enumerates.
func (c *Counter) Len() int {
	return len(c.params)
}

// Snapshot returns a copy of the current assignment.
func (c *Counter) Snapshot() []Param {
	out := make([]Param, len(c.params))
	copy(out, c.params)
	return out
}

// Advance moves to the next assignment.
//
// Each parameter is flipped in declared order until one flips to true; a flip
// to false carries into the next parameter. Advance panics if HasNext is
// false.
func (c *Counter) Advance() {
	if c.remaining == 0 {
		panic("sweep: Advance called on exhausted counter")
	}
	c.remaining--

	for i := range c.params {
		c.params[i].Value = !c.params[i].Value
		if c.params[i].Value {
			break
		}
	}
}
