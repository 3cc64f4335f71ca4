package main

import (
	"fmt"

	"portfoliosim/internal/report"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRebalanceCmd(a *app) *cobra.Command {
	var portfolio string
	var confirm bool
	c := &cobra.Command{
		Use:   "rebalance",
		Short: "Show a portfolio's drift and optionally trade back to its targets",
		RunE: func(c *cobra.Command, _ []string) error {
			portfolioID, err := uuid.Parse(portfolio)
			if err != nil {
				return fmt.Errorf("invalid --portfolio %q: %w", portfolio, err)
			}

			balance, err := a.deps.ApiHandler.PortfolioService.GetBalance(c.Context(), portfolioID)
			if err != nil {
				return err
			}
			result, err := a.deps.ApiHandler.RebalanceService.Rebalance(c.Context(), portfolioID, confirm)
			if err != nil {
				return fmt.Errorf("failed to rebalance: %w", err)
			}

			return a.render(c, report.RebalanceMarkdown(balance.Name, result))
		},
	}
	c.Flags().StringVar(&portfolio, "portfolio", "", "portfolio id")
	c.Flags().BoolVar(&confirm, "confirm", false, "execute the trades instead of previewing them")
	_ = c.MarkFlagRequired("portfolio")
	return c
}
