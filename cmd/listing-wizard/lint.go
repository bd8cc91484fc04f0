package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	listingwizard "github.com/goliatone/go-listingwizard"
	pkgopenapi "github.com/goliatone/go-listingwizard/pkg/openapi"
)

const extensionNamespace = "x-wizard-"

type violation struct {
	file     string
	location string
	message  string
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <paths...>",
		Short: "Lint OpenAPI documents for malformed x-wizard extensions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := listingwizard.NewParser()

			var violations []violation
			for _, path := range args {
				linted, err := lintFile(cmd.Context(), parser, path)
				if err != nil {
					return fmt.Errorf("lint %s: %w", path, err)
				}
				violations = append(violations, linted...)
			}
			return report(cmd.ErrOrStderr(), violations)
		},
	}
}

func report(w io.Writer, violations []violation) error {
	if len(violations) == 0 {
		return nil
	}
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].file == violations[j].file {
			if violations[i].location == violations[j].location {
				return violations[i].message < violations[j].message
			}
			return violations[i].location < violations[j].location
		}
		return violations[i].file < violations[j].file
	})
	for _, v := range violations {
		fmt.Fprintf(w, "%s: %s -> %s\n", v.file, v.location, v.message)
	}
	return fmt.Errorf("%d wizard extension violation(s)", len(violations))
}

func lintFile(ctx context.Context, parser pkgopenapi.Parser, path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	doc, err := pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(path), raw)
	if err != nil {
		return nil, fmt.Errorf("construct document: %w", err)
	}

	operations, err := parser.Operations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("parse operations: %w", err)
	}

	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var result []violation
	for _, id := range ids {
		op := operations[id]
		base := []string{"operation", id}
		result = append(result, lintKeys(path, base, op.Extensions, pkgopenapi.StepsExtension)...)
		result = append(result, lintSchema(path, append(base, "requestBody"), op.RequestBody, false)...)

		if _, err := pkgopenapi.Steps(op); err != nil && !errors.Is(err, pkgopenapi.ErrNoWizardSteps) {
			result = append(result, violation{
				file:     path,
				location: formatLocation(base),
				message:  err.Error(),
			})
		}
	}

	return result, nil
}

func lintSchema(file string, path []string, schema pkgopenapi.Schema, property bool) []violation {
	var result []violation
	if property {
		result = append(result, lintKeys(file, path, schema.Extensions, pkgopenapi.StepExtension)...)
		if value, ok := schema.Extensions[pkgopenapi.StepExtension]; ok {
			if s, isString := value.(string); !isString || strings.TrimSpace(s) == "" {
				result = append(result, violation{
					file:     file,
					location: formatLocation(path),
					message:  fmt.Sprintf("%s must be a non-empty step id (got %T)", pkgopenapi.StepExtension, value),
				})
			}
		}
	} else {
		result = append(result, lintKeys(file, path, schema.Extensions)...)
	}

	keys := make([]string, 0, len(schema.Properties))
	for key := range schema.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		next := appendPath(path, "properties."+key)
		result = append(result, lintSchema(file, next, schema.Properties[key], true)...)
	}

	return result
}

// lintKeys reports wizard extensions that are not in allowed.
func lintKeys(file string, path []string, extensions map[string]any, allowed ...string) []violation {
	keys := make([]string, 0, len(extensions))
	for key := range extensions {
		if strings.HasPrefix(key, extensionNamespace) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var result []violation
	for _, key := range keys {
		if contains(allowed, key) {
			continue
		}
		message := fmt.Sprintf("unsupported wizard extension %q", key)
		if len(allowed) > 0 {
			message += fmt.Sprintf(" (supported here: %s)", strings.Join(allowed, ", "))
		}
		result = append(result, violation{
			file:     file,
			location: formatLocation(path),
			message:  message,
		})
	}
	return result
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	next = append(next, segment)
	return next
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
