package spec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/wesleyorama2/sweepgen/internal/sweep"
)

// Kind distinguishes swept parameters from fixed ones.
type Kind int

const (
	// KindVariable parameters take both values across the batch.
	KindVariable Kind = iota
	// KindConstant parameters keep one value across the batch.
	KindConstant
)

// String returns the document spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "Variable"
	case KindConstant:
		return "Constant"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Parameter is one declared parameter.
type Parameter struct {
	Name string
	Kind Kind

	// Value is only meaningful for constant parameters.
	Value bool
}

// Spec is a parsed sweep document.
type Spec struct {
	// Iterations, BucketCount and TimeLimit are passed through to the
	// generated files untouched.
	Iterations  int `json:"iterations"`
	BucketCount int `json:"bucket_count"`
	TimeLimit   int `json:"time_limit"`

	// Parameters in declared order.
	Parameters []Parameter `json:"parameters"`
}

// Split separates test parameter names from constant parameters, keeping the
// declared order within each list.
func (s *Spec) Split() ([]string, []sweep.Param) {
	var variables []string
	var constants []sweep.Param
	for _, p := range s.Parameters {
		switch p.Kind {
		case KindConstant:
			constants = append(constants, sweep.Param{Name: p.Name, Value: p.Value})
		default:
			variables = append(variables, p.Name)
		}
	}
	return variables, constants
}

// VariableCount returns the number of test parameters.
func (s *Spec) VariableCount() int {
	n := 0
	for _, p := range s.Parameters {
		if p.Kind == KindVariable {
			n++
		}
	}
	return n
}

// Combinations returns the number of files a full sweep produces. It returns
// 0 when the test parameter count exceeds sweep.MaxVariables.
func (s *Spec) Combinations() uint64 {
	k := s.VariableCount()
	if k > sweep.MaxVariables {
		return 0
	}
	return uint64(1) << k
}

// UnmarshalJSON accepts both the tuple form
//
//	["name", "Variable"]
//	["name", {"Constant": true}]
//
// and the mapping form
//
//	{"name": "name"}
//	{"name": "name", "constant": true}
func (p *Parameter) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty parameter")
	}

	switch data[0] {
	case '[':
		var tuple []json.RawMessage
		if err := json.Unmarshal(data, &tuple); err != nil {
			return err
		}
		if len(tuple) != 2 {
			return fmt.Errorf("parameter tuple must have 2 elements, got %d", len(tuple))
		}
		if err := json.Unmarshal(tuple[0], &p.Name); err != nil {
			return fmt.Errorf("parameter name: %w", err)
		}
		return p.unmarshalKind(tuple[1])

	case '{':
		var m struct {
			Name     string `json:"name"`
			Constant *bool  `json:"constant"`
		}
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		p.Name = m.Name
		if m.Constant != nil {
			p.Kind = KindConstant
			p.Value = *m.Constant
		} else {
			p.Kind = KindVariable
		}
		return nil

	default:
		return fmt.Errorf("parameter must be a [name, kind] pair or a mapping")
	}
}

func (p *Parameter) unmarshalKind(data json.RawMessage) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != KindVariable.String() {
			return fmt.Errorf("parameter %q: unknown kind %q", p.Name, tag)
		}
		p.Kind = KindVariable
		return nil
	}

	var constant struct {
		Constant *bool `json:"Constant"`
	}
	if err := json.Unmarshal(data, &constant); err != nil {
		return fmt.Errorf("parameter %q: %w", p.Name, err)
	}
	if constant.Constant == nil {
		return fmt.Errorf("parameter %q: kind must be \"Variable\" or {\"Constant\": <bool>}", p.Name)
	}
	p.Kind = KindConstant
	p.Value = *constant.Constant
	return nil
}

// MarshalJSON writes the tuple form.
func (p Parameter) MarshalJSON() ([]byte, error) {
	if p.Kind == KindConstant {
		return json.Marshal([]any{p.Name, map[string]bool{"Constant": p.Value}})
	}
	return json.Marshal([]any{p.Name, KindVariable.String()})
}
