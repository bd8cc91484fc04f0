package tui_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-listingwizard/pkg/renderers/tui"
	"github.com/goliatone/go-listingwizard/pkg/testsupport"
	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

type stubDriver struct {
	inputs   []string
	inputErr error
	selects  []int
	confirms []bool

	menus [][]string
	infos []string
}

func (s *stubDriver) Input(_ context.Context, _ tui.InputConfig) (string, error) {
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if len(s.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[0]
	s.inputs = s.inputs[1:]
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ tui.ConfirmConfig) (bool, error) {
	if len(s.confirms) == 0 {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirms[0]
	s.confirms = s.confirms[1:]
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	s.menus = append(s.menus, cfg.Options)
	if len(s.selects) == 0 {
		return -1, errors.New("no select scripted")
	}
	val := s.selects[0]
	s.selects = s.selects[1:]
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func (s *stubDriver) infoContaining(fragment string) bool {
	for _, info := range s.infos {
		if strings.Contains(info, fragment) {
			return true
		}
	}
	return false
}

func newNavigator(driver tui.PromptDriver, opts ...tui.NavigatorOption) *tui.Navigator {
	base := []tui.NavigatorOption{
		tui.WithPromptDriver(driver),
		tui.WithRenderer(tui.New(tui.WithStyleRenderer(lipgloss.NewRenderer(io.Discard)))),
	}
	return tui.NewNavigator(append(base, opts...)...)
}

func TestNavigator_CompletesWithBackTrack(t *testing.T) {
	driver := &stubDriver{
		inputs:  []string{"apartment", "house"},
		selects: []int{0, 1, 0, 0, 0, 0},
	}
	var saved []string
	nav := newNavigator(driver, tui.WithSaver(func(_ context.Context, step wizard.Step, _ map[string]any) error {
		saved = append(saved, step.ID)
		return nil
	}))

	session := wizard.NewSession(testsupport.SampleSteps())
	result, err := nav.Run(testsupport.Context(), session, "Create listing")
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if result.Status != wizard.StatusCompleted {
		t.Fatalf("want completed, got %s", result.Status)
	}
	if diff := cmp.Diff(map[string]any{"resourceType": "house"}, result.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"property", "property", "details", "photos", "pricing"}, saved); diff != "" {
		t.Fatalf("saves mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"Next", "Cancel"}, driver.menus[0]); diff != "" {
		t.Fatalf("first step menu (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Next", "Back", "Cancel"}, driver.menus[1]); diff != "" {
		t.Fatalf("second step menu (-want +got):\n%s", diff)
	}
	if last := driver.menus[len(driver.menus)-1]; last[0] != "Finish" {
		t.Fatalf("last step should offer Finish, got %v", last)
	}
	if !driver.infoContaining("Create listing  2/4") {
		t.Fatalf("expected rendered headers, got %v", driver.infos)
	}
	if !driver.infoContaining("Saving…") {
		t.Fatalf("expected saving notice while busy")
	}
}

func TestNavigator_CancelRequiresConfirmation(t *testing.T) {
	driver := &stubDriver{
		inputs:   []string{"room", "room"},
		selects:  []int{1, 1},
		confirms: []bool{false, true},
	}
	session := wizard.NewSession(testsupport.SampleSteps())

	result, err := newNavigator(driver).Run(testsupport.Context(), session, "Create listing")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Status != wizard.StatusCancelled {
		t.Fatalf("want cancelled, got %s", result.Status)
	}
	if len(driver.menus) != 2 {
		t.Fatalf("expected two menus, got %d", len(driver.menus))
	}
}

func TestNavigator_SaveFailureKeepsStep(t *testing.T) {
	driver := &stubDriver{
		inputs:  []string{"apartment", "apartment"},
		selects: []int{0},
	}
	calls := 0
	nav := newNavigator(driver, tui.WithSaver(func(context.Context, wizard.Step, map[string]any) error {
		calls++
		return errors.New("storage offline")
	}))
	session := wizard.NewSession(testsupport.SampleSteps())

	_, err := nav.Run(testsupport.Context(), session, "Create listing")
	if err == nil || !strings.Contains(err.Error(), "no select scripted") {
		t.Fatalf("expected run to stop at the exhausted script, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("want 1 save call, got %d", calls)
	}
	if session.Index() != 0 || session.Busy() {
		t.Fatalf("session moved or stayed busy: index=%d busy=%v", session.Index(), session.Busy())
	}
	if !driver.infoContaining(`save step "property": storage offline`) {
		t.Fatalf("expected save failure notice, got %v", driver.infos)
	}
}

func TestNavigator_IncompleteStepReported(t *testing.T) {
	driver := &stubDriver{
		inputs:  []string{"   ", ""},
		selects: []int{0},
	}
	session := wizard.NewSession(testsupport.SampleSteps())

	if _, err := newNavigator(driver).Run(testsupport.Context(), session, "Create listing"); err == nil {
		t.Fatalf("expected exhausted script error")
	}
	if !driver.infoContaining("missing required fields: resourceType") {
		t.Fatalf("expected incomplete notice, got %v", driver.infos)
	}
	if session.Index() != 0 {
		t.Fatalf("incomplete step must not advance")
	}
}

func TestNavigator_AbortStopsRun(t *testing.T) {
	driver := &stubDriver{inputErr: tui.ErrAborted}
	session := wizard.NewSession(testsupport.SampleSteps())

	result, err := newNavigator(driver).Run(testsupport.Context(), session, "Create listing")
	if !errors.Is(err, tui.ErrAborted) {
		t.Fatalf("want ErrAborted, got %v", err)
	}
	if result.Status != wizard.StatusActive {
		t.Fatalf("aborted run keeps the session active, got %s", result.Status)
	}
}

func TestNavigator_UnknownSelection(t *testing.T) {
	driver := &stubDriver{inputs: []string{"land"}, selects: []int{7}}
	session := wizard.NewSession(testsupport.SampleSteps())

	if _, err := newNavigator(driver).Run(testsupport.Context(), session, ""); !errors.Is(err, tui.ErrUnknownAction) {
		t.Fatalf("want ErrUnknownAction, got %v", err)
	}
}

func TestNavigator_NoSteps(t *testing.T) {
	_, err := newNavigator(&stubDriver{}).Run(testsupport.Context(), wizard.NewSession(nil), "")
	if !errors.Is(err, wizard.ErrNoSteps) {
		t.Fatalf("want ErrNoSteps, got %v", err)
	}
}
