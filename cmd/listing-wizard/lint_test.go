package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listingwizard "github.com/goliatone/go-listingwizard"
)

func TestLintFile_CleanDocument(t *testing.T) {
	fixture := filepath.Join("..", "..", "internal", "openapi", "testdata", "listing.yaml")
	violations, err := lintFile(context.Background(), listingwizard.NewParser(), fixture)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestLintFile_ReportsViolations(t *testing.T) {
	fixture := filepath.Join("testdata", "bad-extensions.yaml")
	violations, err := lintFile(context.Background(), listingwizard.NewParser(), fixture)
	require.NoError(t, err)

	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.location+" -> "+v.message)
	}
	joined := strings.Join(messages, "\n")

	assert.Contains(t, joined, `operation > createListing -> unsupported wizard extension "x-wizard-layout"`)
	assert.Contains(t, joined, `properties.title -> unsupported wizard extension "x-wizard-stage"`)
	assert.Contains(t, joined, "x-wizard-step must be a non-empty step id")
	assert.Contains(t, joined, "duplicate step")
}

func TestLintCommand_FailsOnViolations(t *testing.T) {
	_, stderr, err := execute(t, "lint", filepath.Join("testdata", "bad-extensions.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "violation")
	assert.Contains(t, stderr, "bad-extensions.yaml")
}
