// Package spec loads and validates parameter sweep documents.
//
// A document declares three pass-through scalars and an ordered list of
// boolean parameters. Each parameter is either a test parameter, swept over
// both values, or a constant parameter held fixed for the whole batch.
//
// Example YAML:
//
//	iterations: 10
//	bucket_count: 4
//	time_limit: 60
//	parameters:
//	  - [use_cache, Variable]
//	  - [inline, {Constant: true}]
//	  - name: prefetch
//	  - name: trace
//	    constant: false
//
// The same document in HCL:
//
//	iterations   = 10
//	bucket_count = 4
//	time_limit   = 60
//
//	parameter "use_cache" {}
//	parameter "inline" {
//	  constant = true
//	}
//
// Documents are checked in two passes: YAML and JSON input is first matched
// against an embedded JSON Schema, then every decoded Spec goes through
// Validate, which enforces the naming rules the sweep package relies on.
package spec
