package main

import (
	"github.com/dukerupert/mealcart/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootOptions struct {
	configFile string
	v          *viper.Viper
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "mealcart",
		Short: "Weekly meal planner and shopping list",
		Long: `mealcart turns a weekly meal plan into a consolidated shopping list,
grouped by grocery section and checked against what is already in the pantry.

Run "mealcart serve" for the kitchen service, or "mealcart report" to build a
list from YAML files without one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.LoadEnvFiles()
			v, err := config.New(opts.configFile)
			if err != nil {
				return err
			}
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			opts.v = v
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is ./mealcart.yaml)")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().String("log-format", "", "log format: text or json")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newBackupCmd(opts))
	cmd.AddCommand(newRestoreCmd(opts))
	return cmd
}
