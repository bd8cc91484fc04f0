// Package testsupport holds helpers shared by the package tests: golden file
// handling, fixture loading and small context utilities.
package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

// UpdateGoldensEnv enables golden rewrites when set to any value.
const UpdateGoldensEnv = "UPDATE_GOLDENS"

// MustLoadSteps loads a JSON array of steps from path.
func MustLoadSteps(t *testing.T, path string) []wizard.Step {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load steps: %v", err)
	}
	var out []wizard.Step
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal steps: %v", err)
	}
	return out
}

// SampleSteps returns a four step listing flow used across renderer tests.
func SampleSteps() []wizard.Step {
	return []wizard.Step{
		{ID: "property", Title: "Property", TitleKey: "wizard.steps.property", Required: []string{"resourceType"}},
		{ID: "details", Title: "Details", TitleKey: "wizard.steps.details"},
		{ID: "photos", Title: "Photos", TitleKey: "wizard.steps.photos"},
		{ID: "pricing", Title: "Pricing", TitleKey: "wizard.steps.pricing"},
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv(UpdateGoldensEnv) == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
