package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-listingwizard/pkg/catalog"
	"github.com/goliatone/go-listingwizard/pkg/orchestrator"
	"github.com/goliatone/go-listingwizard/pkg/render"
)

func newCatalogCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List listing enumerations and wizard profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := generatorOptions(*cfg)
			if err != nil {
				return err
			}
			gen := orchestrator.New(opts...)
			renderOpts, err := gen.RenderOptions(orchestrator.Request{Locale: cfg.Locale})
			if err != nil {
				return err
			}
			return writeCatalog(cmd.OutOrStdout(), gen.Profiles(), renderOpts)
		},
	}
}

func writeCatalog(w io.Writer, profiles *catalog.Profiles, opts render.RenderOptions) error {
	var b strings.Builder

	b.WriteString("resource types:\n")
	for _, rt := range catalog.AllResourceTypes() {
		fmt.Fprintf(&b, "  %s\n", rt)
	}
	b.WriteString("pricing models:\n")
	for _, pm := range catalog.AllPricingModels() {
		fmt.Fprintf(&b, "  %s\n", pm)
	}
	b.WriteString("currencies:\n")
	for _, c := range catalog.AllCurrencies() {
		fmt.Fprintf(&b, "  %s (%s)\n", c, c.Symbol())
	}

	b.WriteString("profiles:\n")
	for _, profileType := range profiles.Types() {
		profile, err := profiles.Profile(profileType)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "  %s: %s\n", profileType, render.LocalizeText(profile.TitleKey, profile.Title, opts))
		for i, step := range profile.Steps {
			fmt.Fprintf(&b, "    %d. %s", i+1, render.LocalizeText(step.TitleKey, step.Title, opts))
			if len(step.Required) > 0 {
				fmt.Fprintf(&b, " [%s]", strings.Join(step.Required, ", "))
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
