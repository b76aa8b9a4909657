package spec

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/sweepgen/internal/ctxlog"
)

// ParseOptions controls how a document is read.
type ParseOptions struct {
	// Root is a gjson path selecting the sweep object inside a larger
	// document, e.g. "experiments.kernel". Empty means the whole document.
	// Not supported for HCL documents.
	Root string
}

// LoadSpec loads a sweep document from a file.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON
//   - .hcl -> HCL
//
// Unknown extensions are read as YAML. The returned Spec has passed Validate.
func LoadSpec(ctx context.Context, path string, opts ParseOptions) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	return ParseSpec(ctx, data, path, opts)
}

// ParseSpec parses and validates document data. path is only used to pick
// the format and to label diagnostics.
func ParseSpec(ctx context.Context, data []byte, path string, opts ParseOptions) (*Spec, error) {
	logger := ctxlog.FromContext(ctx)

	ext := strings.ToLower(filepath.Ext(path))
	logger.Debug("Parsing spec document.", "path", path, "format", formatName(ext), "bytes", len(data))

	var spec *Spec
	var err error
	switch ext {
	case ".hcl":
		if opts.Root != "" {
			return nil, fmt.Errorf("root selection is not supported for HCL documents")
		}
		spec, err = parseHCL(data, path)
	case ".json":
		spec, err = parseTree(ctx, data, opts, func(b []byte, v any) error {
			if err := json.Unmarshal(b, v); err != nil {
				return fmt.Errorf("failed to parse JSON spec: %w", err)
			}
			return nil
		})
	default:
		spec, err = parseTree(ctx, data, opts, func(b []byte, v any) error {
			if err := yaml.Unmarshal(b, v); err != nil {
				return fmt.Errorf("failed to parse YAML spec: %w", err)
			}
			return nil
		})
	}
	if err != nil {
		return nil, err
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Spec loaded.",
		"parameters", len(spec.Parameters),
		"variables", spec.VariableCount(),
		"combinations", spec.Combinations(),
	)
	return spec, nil
}

// parseTree decodes a YAML or JSON document into a generic tree, normalises
// it to JSON, applies the root selector and the schema, then decodes the
// result into a Spec.
func parseTree(ctx context.Context, data []byte, opts ParseOptions, decode func([]byte, any) error) (*Spec, error) {
	var tree any
	if err := decode(data, &tree); err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, fmt.Errorf("spec document is empty")
	}

	doc, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("spec document must use string keys: %w", err)
	}

	if opts.Root != "" {
		doc, err = selectRoot(doc, opts.Root)
		if err != nil {
			return nil, err
		}
		ctxlog.FromContext(ctx).Debug("Selected spec root.", "root", opts.Root)
	}

	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	var spec Spec
	if err := json.Unmarshal(doc, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode spec: %w", err)
	}
	return &spec, nil
}

// selectRoot returns the raw JSON object found at path.
func selectRoot(doc []byte, path string) ([]byte, error) {
	result := gjson.GetBytes(doc, path)
	if !result.Exists() {
		return nil, fmt.Errorf("root %q not found in spec document", path)
	}
	if !result.IsObject() {
		return nil, fmt.Errorf("root %q does not select an object", path)
	}
	return []byte(result.Raw), nil
}

func formatName(ext string) string {
	switch ext {
	case ".hcl":
		return "hcl"
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}
