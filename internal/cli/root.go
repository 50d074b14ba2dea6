// Package cli implements carbonctl, the offline companion to the SmartCarbon
// server for inspecting factors and trying extraction on bill text.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"smartcarbon/internal/config"
)

// NewRootCmd creates the root Cobra command for the carbonctl CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "carbonctl",
		Short:         "SmartCarbon offline tools",
		Long:          "carbonctl: inspect emission factors, extract bill fields, and compute kg CO2e",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `  # Show the emission factor table
  carbonctl factors

  # Extract fields from OCR text
  carbonctl extract --category electricity --file bill.txt

  # Convert 450 kWh of electricity to kg CO2e
  carbonctl calc 450 electricity`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := "warn"
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level = "debug"
			}
			logger := config.NewLogger(config.LogConfig{Level: level, Format: "console"}, cmd.ErrOrStderr())
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newFactorsCmd(), newExtractCmd(), newCalcCmd())

	return cmd
}

// loggerFrom returns the command logger installed by the root command.
func loggerFrom(cmd *cobra.Command) *zerolog.Logger {
	return zerolog.Ctx(cmd.Context())
}
