package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dukerupert/mealcart/internal/pantry"
	"github.com/dukerupert/mealcart/internal/planfile"
	"github.com/dukerupert/mealcart/internal/shopping"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	planPath   string
	pantryPath string
	compare    bool
	format     string
}

func newReportCmd() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build a shopping list from a YAML meal plan",
		Example: `  mealcart report --plan week.yaml
  mealcart report --plan week.yaml --pantry pantry.yaml --compare
  mealcart report --plan week.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.planPath, "plan", "", "meal plan YAML file")
	cmd.Flags().StringVar(&opts.pantryPath, "pantry", "", "pantry YAML file")
	cmd.Flags().BoolVar(&opts.compare, "compare", false, "check the list against the pantry")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text or json")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}

func runReport(w io.Writer, opts *reportOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	plan, err := planfile.LoadPlan(opts.planPath)
	if err != nil {
		return err
	}
	list := shopping.Build(plan)

	if !opts.compare {
		if opts.format == "json" {
			return writeJSON(w, list)
		}
		_, err := io.WriteString(w, shopping.Export(list))
		return err
	}

	entries, err := planfile.LoadPantry(opts.pantryPath)
	if err != nil {
		return err
	}
	cmp := pantry.Compare(list.Items, entries)

	if opts.format == "json" {
		return writeJSON(w, map[string]any{
			"shopping_list": list,
			"comparison":    cmp,
			"summary":       pantry.Summarize(cmp),
		})
	}
	if _, err := io.WriteString(w, shopping.Export(list)); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n"+shopping.ExportComparison(cmp))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
