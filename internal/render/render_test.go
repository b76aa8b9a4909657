package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func sampleData() Data {
	return Data{
		Index:       3,
		Instance:    "kernel",
		Iterations:  10,
		BucketCount: 4,
		TimeLimit:   60,
		Body:        "# Constant Parameters\nx: true\n# Test Parameters\na: true\nb: true\n",
	}
}

func TestDefaultRender(t *testing.T) {
	out, err := Default().Render(sampleData())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expectedContents := []string{
		"name: kernel-3\n",
		"iterations: 10\n",
		"bucket_count: 4\n",
		"time_limit: 60\n",
		"# Constant Parameters\nx: true\n# Test Parameters\na: true\nb: true\n",
	}
	for _, expected := range expectedContents {
		if !strings.Contains(out, expected) {
			t.Errorf("output does not contain %q:\n%s", expected, out)
		}
	}
}

func TestDefaultRenderIsYAML(t *testing.T) {
	out, err := Default().Render(sampleData())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("rendered output is not YAML: %v\n%s", err, out)
	}
	if doc["iterations"] != 10 {
		t.Errorf("iterations = %v, want 10", doc["iterations"])
	}
	if doc["x"] != true || doc["a"] != true {
		t.Errorf("parameters not decoded: %v", doc)
	}
}

func TestCustomTemplate(t *testing.T) {
	r, err := New("run {{ upper .Instance }} #{{ .Index }}\nparams:\n{{ indent 2 .Body }}")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, err := r.Render(Data{Index: 0, Instance: "k", Body: "a: false\nb: true\n"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "run K #0\nparams:\n  a: false\n  b: true\n"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}

func TestNewInvalidTemplate(t *testing.T) {
	if _, err := New("{{ .Index "); err == nil {
		t.Error("expected parse error")
	}
}

func TestRenderMissingField(t *testing.T) {
	r, err := New("{{ .Nope }}")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := r.Render(sampleData()); err == nil {
		t.Error("expected execution error for unknown field")
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmpl.txt")
	if err := os.WriteFile(path, []byte("{{ .Instance }}-{{ .Index }}"), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	out, err := r.Render(sampleData())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "kernel-3" {
		t.Errorf("Render() = %q", out)
	}

	if _, err := FromFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing template file")
	}
}
