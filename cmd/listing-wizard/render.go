package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-listingwizard/pkg/catalog"
	pkgopenapi "github.com/goliatone/go-listingwizard/pkg/openapi"
	"github.com/goliatone/go-listingwizard/pkg/orchestrator"
)

type renderFlags struct {
	profile   string
	title     string
	step      int
	busy      bool
	back      bool
	cancel    bool
	source    string
	operation string
	output    string
}

func newRenderCmd(cfg *Config) *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the wizard header for a profile or OpenAPI operation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request(*cfg)
			if err != nil {
				return err
			}
			opts, err := generatorOptions(*cfg)
			if err != nil {
				return err
			}

			out, err := orchestrator.New(opts...).Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			if f.output != "" {
				if err := os.WriteFile(f.output, out, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Header written to %s\n", f.output)
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.profile, "profile", string(catalog.ProfileIndividual), "Listing profile (individual, agency, developer)")
	flags.StringVar(&f.title, "title", "", "Header title (default: localized profile title)")
	flags.IntVar(&f.step, "step", 0, "0-based current step index")
	flags.BoolVar(&f.busy, "busy", false, "Render the saving state")
	flags.BoolVar(&f.back, "back", true, "Include the back control")
	flags.BoolVar(&f.cancel, "cancel", true, "Include the cancel control")
	flags.StringVar(&f.source, "openapi", "", "OpenAPI document path or URL to read steps from")
	flags.StringVar(&f.operation, "operation", "", "Operation ID declaring x-wizard-steps")
	flags.StringVarP(&f.output, "output", "o", "", "Output file (stdout if empty)")
	return cmd
}

func (f renderFlags) request(cfg Config) (orchestrator.Request, error) {
	req := orchestrator.Request{
		Title:        f.title,
		CurrentIndex: f.step,
		Busy:         f.busy,
		WithBack:     f.back,
		WithCancel:   f.cancel,
		Renderer:     cfg.Renderer,
		Locale:       cfg.Locale,
		ThemeName:    cfg.Theme,
		ThemeVariant: cfg.Variant,
	}

	if f.source != "" || f.operation != "" {
		if f.source == "" || f.operation == "" {
			return orchestrator.Request{}, fmt.Errorf("--openapi and --operation must be used together")
		}
		src, err := pkgopenapi.ParseSource(f.source)
		if err != nil {
			return orchestrator.Request{}, err
		}
		req.Source = src
		req.OperationID = f.operation
	}

	profile, err := catalog.ParseProfileType(f.profile)
	if err != nil {
		return orchestrator.Request{}, err
	}
	req.Profile = profile
	return req, nil
}
