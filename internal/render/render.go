// Package render turns a parameter block and its run metadata into the
// contents of one generated file.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"
)

//go:embed templates/default.yml.tmpl
var defaultTemplate string

// Data is everything a template can reference for one generated file.
type Data struct {
	// Index is the zero-based position of the file in the batch.
	Index int

	// Instance is the run identifier given on the command line.
	Instance string

	// Pass-through scalars from the spec document.
	Iterations  int
	BucketCount int
	TimeLimit   int

	// Body is the rendered parameter block.
	Body string
}

// Renderer executes a parsed template against Data.
type Renderer struct {
	tmpl *template.Template
}

// New parses a template. Missing keys are an error at render time.
func New(text string) (*Renderer, error) {
	tmpl, err := template.New("config").
		Funcs(templateFuncs()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Default returns a renderer for the built-in YAML template.
func Default() *Renderer {
	r, err := New(defaultTemplate)
	if err != nil {
		panic(err)
	}
	return r
}

// FromFile loads a template from path.
func FromFile(path string) (*Renderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}
	return New(string(data))
}

// DefaultTemplate returns the source of the built-in template.
func DefaultTemplate() string {
	return defaultTemplate
}

// Render executes the template for one file.
func (r *Renderer) Render(data Data) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// templateFuncs returns helper functions for templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"indent": func(spaces int, s string) string {
			pad := strings.Repeat(" ", spaces)
			lines := strings.SplitAfter(s, "\n")
			var sb strings.Builder
			for _, line := range lines {
				if line == "" || line == "\n" {
					sb.WriteString(line)
					continue
				}
				sb.WriteString(pad)
				sb.WriteString(line)
			}
			return sb.String()
		},
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
	}
}
