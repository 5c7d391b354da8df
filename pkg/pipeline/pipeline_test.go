package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	wferrors "github.com/matzehuels/workflowdot/pkg/errors"
	"github.com/matzehuels/workflowdot/pkg/render/texdot"
)

const buildTest = `hash: 1
taskType: Build
dependencies: []
---
hash: 2
taskType: Test
dependencies: [1]
`

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(&bytes.Buffer{}, log.Options{Level: log.DebugLevel})
}

func TestConvert(t *testing.T) {
	input := writeInput(t, "workflow.yaml", buildTest)

	res, err := Convert(context.Background(), Options{Input: input, Validate: true, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	wantOut := filepath.Join(filepath.Dir(input), "workflow.dot")
	if res.Output != wantOut {
		t.Errorf("Output = %q, want %q", res.Output, wantOut)
	}
	if res.Tasks != 2 || res.Edges != 1 {
		t.Errorf("Tasks, Edges = %d, %d, want 2, 1", res.Tasks, res.Edges)
	}
	if res.Preview != "" {
		t.Errorf("Preview = %q, want empty", res.Preview)
	}

	got, err := os.ReadFile(wantOut)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(got)
	for _, want := range []string{
		"digraph D {\n",
		"    node_1 [texlbl=\"Build\"]\n",
		"    node_2 [texlbl=\"Test\"]\n",
		"    node_1 -> node_2\n",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("output missing %q:\n%s", want, dot)
		}
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Errorf("output should end with closing brace:\n%s", dot)
	}
	if strings.Index(dot, "node_1 [") > strings.Index(dot, "node_2 [") ||
		strings.Index(dot, "node_2 [") > strings.Index(dot, "node_1 -> node_2") {
		t.Errorf("output lines out of order:\n%s", dot)
	}
}

func TestConvertExplicitOutput(t *testing.T) {
	input := writeInput(t, "workflow", buildTest)
	out := filepath.Join(t.TempDir(), "graph.dot")

	res, err := Convert(context.Background(), Options{Input: input, Output: out, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if res.Output != out {
		t.Errorf("Output = %q, want %q", res.Output, out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
	if _, err := os.Stat(input + ".dot"); !os.IsNotExist(err) {
		t.Error("derived output should not be written when Output is set")
	}
}

func TestConvertCustomPrologue(t *testing.T) {
	input := writeInput(t, "workflow.yaml", buildTest)
	p := texdot.DefaultPrologue()
	p.Name = "Flow"

	res, err := Convert(context.Background(), Options{Input: input, Prologue: p, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	got, _ := os.ReadFile(res.Output)
	if !strings.HasPrefix(string(got), "digraph Flow {\n") {
		t.Errorf("output should use configured graph name:\n%s", got)
	}
}

func TestConvertMissingInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "missing.yaml")

	_, err := Convert(context.Background(), Options{Input: input, Logger: quietLogger()})
	if !wferrors.Is(err, wferrors.ErrCodeFileNotFound) {
		t.Errorf("Convert() code = %v, want %v", wferrors.GetCode(err), wferrors.ErrCodeFileNotFound)
	}
	if _, err := os.Stat(filepath.Join(dir, "missing.dot")); !os.IsNotExist(err) {
		t.Error("no output should be created for a missing input")
	}
}

func TestConvertMalformedWritesNothing(t *testing.T) {
	input := writeInput(t, "workflow.yaml", "hash: 1\ntaskType: Build\n")

	_, err := Convert(context.Background(), Options{Input: input, Logger: quietLogger()})
	if !wferrors.Is(err, wferrors.ErrCodeMissingKey) {
		t.Errorf("Convert() code = %v, want %v", wferrors.GetCode(err), wferrors.ErrCodeMissingKey)
	}
	if _, err := os.Stat(texdot.OutputPath(input)); !os.IsNotExist(err) {
		t.Error("no output should be created for malformed input")
	}
}

func TestConvertValidation(t *testing.T) {
	input := writeInput(t, "workflow.yaml", "hash: a-b\ntaskType: X\ndependencies: []\n---\nhash: a_b\ntaskType: Y\ndependencies: []\n")

	_, err := Convert(context.Background(), Options{Input: input, Validate: true, Logger: quietLogger()})
	if !wferrors.Is(err, wferrors.ErrCodeDuplicateHash) {
		t.Errorf("Convert() code = %v, want %v", wferrors.GetCode(err), wferrors.ErrCodeDuplicateHash)
	}

	// Without validation the colliding tokens are emitted as-is.
	if _, err := Convert(context.Background(), Options{Input: input, Logger: quietLogger()}); err != nil {
		t.Errorf("Convert() without validation error: %v", err)
	}
}

func TestConvertCancelled(t *testing.T) {
	input := writeInput(t, "workflow.yaml", buildTest)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Convert(ctx, Options{Input: input, Logger: quietLogger()}); err == nil {
		t.Error("Convert() should fail on a cancelled context")
	}
	if _, err := os.Stat(texdot.OutputPath(input)); !os.IsNotExist(err) {
		t.Error("no output should be created after cancellation")
	}
}

func TestConvertEmptyInputPath(t *testing.T) {
	_, err := Convert(context.Background(), Options{})
	if !wferrors.Is(err, wferrors.ErrCodeInvalidInput) {
		t.Errorf("Convert() code = %v, want %v", wferrors.GetCode(err), wferrors.ErrCodeInvalidInput)
	}
}

func TestConvertPreview(t *testing.T) {
	input := writeInput(t, "workflow.yaml", buildTest)

	res, err := Convert(context.Background(), Options{Input: input, Preview: true, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	wantPreview := filepath.Join(filepath.Dir(input), "workflow.svg")
	if res.Preview != wantPreview {
		t.Errorf("Preview = %q, want %q", res.Preview, wantPreview)
	}
	svg, err := os.ReadFile(wantPreview)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("preview is not an SVG document")
	}
}
