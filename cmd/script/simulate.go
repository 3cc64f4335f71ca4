package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSimulateCmd(a *app) *cobra.Command {
	var amount int
	var unit string
	c := &cobra.Command{
		Use:   "simulate",
		Short: "Advance every stock's price by a random walk",
		RunE: func(c *cobra.Command, _ []string) error {
			result, err := a.deps.SimulationService.SimulateForward(c.Context(), amount, unit)
			if err != nil {
				return fmt.Errorf("failed to simulate: %w", err)
			}
			fmt.Fprintf(
				c.OutOrStdout(),
				"simulated %d days for %d stocks: %d prices generated, %d inserted\n",
				result.TotalDays,
				result.StocksSimulated,
				result.PricesGenerated,
				result.PricesInserted,
			)
			return nil
		},
	}
	c.Flags().IntVar(&amount, "amount", 1, "how many units to simulate")
	c.Flags().StringVar(&unit, "unit", "days", "days, weeks or months")
	return c
}
