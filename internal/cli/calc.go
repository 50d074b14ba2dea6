package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"smartcarbon/internal/domain"
	"smartcarbon/internal/emissions"
)

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "calc AMOUNT CATEGORY",
		Short:   "Convert an amount of a category into kg CO2e",
		Example: `  carbonctl calc 450 electricity`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			category := domain.Category(args[1])

			kg, err := emissions.Calculate(amount, category)
			if err != nil {
				return err
			}

			factor, _ := domain.LookupFactor(category)
			fmt.Fprintf(cmd.OutOrStdout(), "%g %s of %s = %.2f kg CO2e\n", amount, factor.Unit, category, kg)
			if line := emissions.DescribeEquivalency(kg); line != "" {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
