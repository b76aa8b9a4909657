package sweep

import "iter"

// Step is one element of a Sequence.
type Step struct {
	// Index is the zero-based position of the step in the sequence.
	Index int

	// Block is the rendered parameter block.
	Block string
}

// Sequence yields one parameter block per test parameter assignment.
//
// A Sequence is forward-only and cannot be restarted; build a new one to
// enumerate again.
type Sequence struct {
	counter   *Counter
	constants []Param
	total     uint64
	index     int
}

// NewSequence creates a sequence over the given test parameter names. The
// constant parameters are copied and appear unchanged in every block.
//
// It panics if more than MaxVariables names are given.
func NewSequence(variables []string, constants []Param) *Sequence {
	counter := NewCounter(variables)

	consts := make([]Param, len(constants))
	copy(consts, constants)

	return &Sequence{
		counter:   counter,
		constants: consts,
		total:     counter.Remaining(),
	}
}

// Len returns the total number of steps the sequence produces (2^k).
func (s *Sequence) Len() uint64 {
	return s.total
}

// Next returns the next step, or false once the sequence is exhausted.
func (s *Sequence) Next() (Step, bool) {
	if !s.counter.HasNext() {
		return Step{}, false
	}

	step := Step{
		Index: s.index,
		Block: Assemble(s.constants, s.counter.Snapshot()),
	}
	s.counter.Advance()
	s.index++

	return step, true
}

// All returns an iterator over the remaining steps as (index, block) pairs.
// Breaking out of the loop leaves the sequence positioned after the last
// yielded step.
func (s *Sequence) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for {
			step, ok := s.Next()
			if !ok || !yield(step.Index, step.Block) {
				return
			}
		}
	}
}
