package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-listingwizard/internal/logging"
	"github.com/goliatone/go-listingwizard/pkg/catalog"
	"github.com/goliatone/go-listingwizard/pkg/orchestrator"
	"github.com/goliatone/go-listingwizard/pkg/renderers/tui"
	"github.com/goliatone/go-listingwizard/pkg/wizard"
)

func newRunCmd(cfg *Config) *cobra.Command {
	var (
		profileName string
		title       string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Walk a listing wizard interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := catalog.ParseProfileType(profileName)
			if err != nil {
				return err
			}
			opts, err := generatorOptions(*cfg)
			if err != nil {
				return err
			}
			gen := orchestrator.New(opts...)

			steps, err := gen.Profiles().Steps(profile)
			if err != nil {
				return err
			}
			req := orchestrator.Request{
				Profile:      profile,
				Title:        title,
				Locale:       cfg.Locale,
				ThemeName:    cfg.Theme,
				ThemeVariant: cfg.Variant,
			}
			input, err := gen.Input(cmd.Context(), req)
			if err != nil {
				return err
			}
			renderOpts, err := gen.RenderOptions(req)
			if err != nil {
				return err
			}

			log := logging.Logr()
			session := wizard.NewSession(steps, wizard.WithLogger(log))
			navigator := tui.NewNavigator(
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
				tui.WithRenderOptions(renderOpts),
				tui.WithSaver(logSaver),
				tui.WithLogger(log),
			)

			result, err := navigator.Run(cmd.Context(), session, input.Title)
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
				return nil
			}
			if err != nil {
				return err
			}

			if result.Status != wizard.StatusCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "wizard %s\n", result.Status)
				return nil
			}
			payload, err := json.MarshalIndent(result.Values, "", "  ")
			if err != nil {
				return fmt.Errorf("encode values: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return err
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", string(catalog.ProfileIndividual), "Listing profile (individual, agency, developer)")
	cmd.Flags().StringVar(&title, "title", "", "Header title (default: localized profile title)")
	return cmd
}

// logSaver stands in for a persistence backend.
func logSaver(ctx context.Context, step wizard.Step, values map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	slog.Debug("step saved", "step", step.ID, "fields", len(values))
	return nil
}
