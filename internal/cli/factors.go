package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"smartcarbon/internal/domain"
)

func newFactorsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Print the emission factor table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			factors := domain.EmissionFactors()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(factors)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tFACTOR\tUNIT\tDESCRIPTION")
			for _, f := range factors {
				fmt.Fprintf(tw, "%s\t%g\tkg CO2e/%s\t%s\n", f.Category, f.Factor, f.Unit, f.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
