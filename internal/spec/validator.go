package spec

import (
	"fmt"
	"strings"

	"github.com/wesleyorama2/sweepgen/internal/sweep"
)

// ValidationError represents a spec validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate checks the rules the sweep package assumes but does not enforce:
// every name is non-empty, unique across test and constant parameters, and
// safe to write as a "name: value" line.
//
// Returns nil if valid, or a *ValidationErrors containing all problems.
func (s *Spec) Validate() error {
	errs := &ValidationErrors{}

	if s.Iterations < 0 {
		errs.Add("iterations", "iterations cannot be negative")
	}
	if s.BucketCount < 0 {
		errs.Add("bucket_count", "bucket_count cannot be negative")
	}
	if s.TimeLimit < 0 {
		errs.Add("time_limit", "time_limit cannot be negative")
	}

	seen := make(map[string]int, len(s.Parameters))
	for i, p := range s.Parameters {
		field := fmt.Sprintf("parameters[%d]", i)
		validateName(field+".name", p.Name, errs)

		if first, dup := seen[p.Name]; dup && p.Name != "" {
			errs.Add(field+".name", fmt.Sprintf("duplicate parameter name %q (first declared at parameters[%d])", p.Name, first))
			continue
		}
		seen[p.Name] = i
	}

	if k := s.VariableCount(); k > sweep.MaxVariables {
		errs.Add("parameters", fmt.Sprintf("%d test parameters exceeds the limit of %d", k, sweep.MaxVariables))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateName rejects names that would corrupt a rendered parameter block.
func validateName(field, name string, errs *ValidationErrors) {
	switch {
	case name == "":
		errs.Add(field, "name is required")
	case strings.ContainsAny(name, "\r\n"):
		errs.Add(field, fmt.Sprintf("name %q cannot contain line breaks", name))
	case strings.Contains(name, ":"):
		errs.Add(field, fmt.Sprintf("name %q cannot contain ':'", name))
	case strings.HasPrefix(name, "#"):
		errs.Add(field, fmt.Sprintf("name %q cannot start with '#'", name))
	case strings.TrimSpace(name) != name:
		errs.Add(field, fmt.Sprintf("name %q cannot have leading or trailing whitespace", name))
	}
}
