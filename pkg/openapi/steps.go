package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

const (
	// StepsExtension lists the wizard steps of an operation.
	StepsExtension = "x-wizard-steps"
	// StepExtension assigns a request body property to a step.
	StepExtension = "x-wizard-step"
)

var (
	// ErrOperationNotFound is returned when the document lacks the operation.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoWizardSteps is returned when an operation has no step extension.
	ErrNoWizardSteps = errors.New("openapi: operation declares no wizard steps")
	// ErrInvalidSteps is returned for malformed step extensions.
	ErrInvalidSteps = errors.New("openapi: invalid wizard steps")
)

type stepEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	TitleKey    string `json:"titleKey"`
	Description string `json:"description"`
}

// StepsFromOperation parses doc with parser and returns the wizard steps of
// operationID.
func StepsFromOperation(ctx context.Context, parser Parser, doc Document, operationID string) ([]wizard.Step, error) {
	if parser == nil {
		return nil, errors.New("openapi: parser is required")
	}
	operations, err := parser.Operations(ctx, doc)
	if err != nil {
		return nil, err
	}
	op, ok := operations[operationID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}
	return Steps(op)
}

// Steps builds the ordered step list declared by op. Required request body
// properties tagged with StepExtension become the Required fields of their
// step, in the order of the schema's required list.
func Steps(op Operation) ([]wizard.Step, error) {
	raw, ok := op.Extensions[StepsExtension]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoWizardSteps, op.ID)
	}

	entries, err := decodeSteps(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSteps, op.ID, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoWizardSteps, op.ID)
	}

	steps := make([]wizard.Step, 0, len(entries))
	index := make(map[string]int, len(entries))
	for i, entry := range entries {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: %q: step %d has no id", ErrInvalidSteps, op.ID, i)
		}
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: %q: duplicate step %q", ErrInvalidSteps, op.ID, id)
		}
		index[id] = i
		steps = append(steps, wizard.Step{
			ID:          id,
			Title:       strings.TrimSpace(entry.Title),
			TitleKey:    strings.TrimSpace(entry.TitleKey),
			Description: strings.TrimSpace(entry.Description),
		})
	}

	body := op.RequestBody
	for _, field := range body.Required {
		property, ok := body.Properties[field]
		if !ok {
			continue
		}
		stepID, _ := property.Extensions[StepExtension].(string)
		stepID = strings.TrimSpace(stepID)
		if stepID == "" {
			continue
		}
		i, ok := index[stepID]
		if !ok {
			return nil, fmt.Errorf("%w: %q: property %q references unknown step %q", ErrInvalidSteps, op.ID, field, stepID)
		}
		steps[i].Required = append(steps[i].Required, field)
	}

	return steps, nil
}

func decodeSteps(raw any) ([]stepEntry, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var entries []stepEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
