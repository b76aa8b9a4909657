package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleSpec = `
iterations: 10
bucket_count: 4
time_limit: 60
parameters:
  - [a, Variable]
  - [x, {Constant: true}]
  - [b, Variable]
`

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer) {
	t.Helper()
	cfg.NoColor = true
	c, err := NewConfig(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	return NewApp(&out, io.Discard, c), &out
}

func TestGenerate(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "configs")
	a, out := newTestApp(t, Config{
		Instance:  "kernel",
		SpecPath:  writeSpec(t, sampleSpec),
		OutputDir: outDir,
	})

	result, err := a.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(4), result.Combinations)
	assert.Equal(t, 4, result.Written)
	assert.Equal(t, int64(4), result.Stats.Files)

	wantTest := []map[string]bool{
		{"a": false, "b": false},
		{"a": true, "b": false},
		{"a": false, "b": true},
		{"a": true, "b": true},
	}
	for i, want := range wantTest {
		data, err := os.ReadFile(filepath.Join(outDir, "kernel-"+string(rune('0'+i))+".yml"))
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, yaml.Unmarshal(data, &doc), "file %d:\n%s", i, data)
		assert.Equal(t, 10, doc["iterations"])
		assert.Equal(t, 4, doc["bucket_count"])
		assert.Equal(t, 60, doc["time_limit"])
		assert.Equal(t, true, doc["x"])
		for name, value := range want {
			assert.Equal(t, value, doc[name], "file %d parameter %s", i, name)
		}
	}

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	assert.Contains(t, out.String(), "Generated 4 files for kernel")
}

func TestGenerateLimit(t *testing.T) {
	outDir := t.TempDir()
	a, out := newTestApp(t, Config{
		Instance:  "k",
		SpecPath:  writeSpec(t, sampleSpec),
		OutputDir: outDir,
		Limit:     3,
	})

	result, err := a.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Written)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Contains(t, out.String(), "stopped after 3 of 4 combinations")
}

func TestGenerateDryRun(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "never")
	a, out := newTestApp(t, Config{
		Instance:  "k",
		SpecPath:  writeSpec(t, sampleSpec),
		OutputDir: outDir,
		DryRun:    true,
	})

	result, err := a.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, result.Written)

	_, err = os.Stat(outDir)
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, out.String(), "Planned (dry run)")
}

func TestGenerateCustomTemplate(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "tmpl.txt")
	require.NoError(t, os.WriteFile(tmpl, []byte("{{ .Instance }}/{{ .Index }}/{{ .TimeLimit }}\n{{ .Body }}"), 0644))

	outDir := filepath.Join(dir, "out")
	a, _ := newTestApp(t, Config{
		Instance:     "k",
		SpecPath:     writeSpec(t, sampleSpec),
		OutputDir:    outDir,
		TemplatePath: tmpl,
		Extension:    "txt",
		Quiet:        true,
	})

	_, err := a.Generate(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "k-2.txt"))
	require.NoError(t, err)
	assert.Equal(t, "k/2/60\n# Constant Parameters\nx: true\n# Test Parameters\na: false\nb: true\n", string(data))
}

func TestGenerateCancelled(t *testing.T) {
	outDir := t.TempDir()
	a, _ := newTestApp(t, Config{
		Instance:  "k",
		SpecPath:  writeSpec(t, sampleSpec),
		OutputDir: outDir,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := a.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Zero(t, result.Written)
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "missing instance",
			cfg:  Config{SpecPath: writeSpec(t, sampleSpec)},
			want: "instance name is required",
		},
		{
			name: "missing spec file",
			cfg:  Config{Instance: "k", SpecPath: filepath.Join(t.TempDir(), "none.yaml")},
			want: "failed to read spec file",
		},
		{
			name: "invalid spec",
			cfg:  Config{Instance: "k", SpecPath: writeSpec(t, "iterations: 1\nbucket_count: 1\ntime_limit: 1\nparameters:\n  - [a, Variable]\n  - [a, Variable]\n")},
			want: "duplicate parameter name",
		},
		{
			name: "missing template",
			cfg:  Config{Instance: "k", SpecPath: writeSpec(t, sampleSpec), TemplatePath: filepath.Join(t.TempDir(), "none")},
			want: "failed to read template file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.OutputDir = t.TempDir()
			a, _ := newTestApp(t, tt.cfg)
			_, err := a.Generate(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	a, out := newTestApp(t, Config{SpecPath: writeSpec(t, sampleSpec)})

	sp, err := a.Validate(context.Background())
	require.NoError(t, err)
	assert.Len(t, sp.Parameters, 3)
	assert.Contains(t, out.String(), "2 test, 1 constant parameters, 4 combinations")
}

func TestValidateInvalid(t *testing.T) {
	a, out := newTestApp(t, Config{SpecPath: writeSpec(t, "iterations: x\n")})

	_, err := a.Validate(context.Background())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "✗ "))
}

func TestPlan(t *testing.T) {
	a, out := newTestApp(t, Config{
		Instance: "kernel",
		SpecPath: writeSpec(t, sampleSpec),
		Limit:    2,
	})

	require.NoError(t, a.Plan(context.Background()))

	text := out.String()
	expectedContents := []string{
		"Sweep plan",
		"Test:         a, b",
		"Constant:     x=true",
		"Combinations: 4",
		"[0] kernel-0.yml\n  # Constant Parameters\n  x: true\n  # Test Parameters\n  a: false\n  b: false\n",
		"[1] kernel-1.yml\n",
	}
	for _, expected := range expectedContents {
		assert.Contains(t, text, expected)
	}
	assert.NotContains(t, text, "[2]")
}

func TestPlanWithoutLimitPrintsNoBlocks(t *testing.T) {
	a, out := newTestApp(t, Config{SpecPath: writeSpec(t, sampleSpec)})

	require.NoError(t, a.Plan(context.Background()))
	assert.NotContains(t, out.String(), "[0]")
}
