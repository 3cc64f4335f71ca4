package main

import (
	"fmt"
	"os"

	l1_service "portfoliosim/internal/service/l1"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	seed := &cobra.Command{
		Use:   "seed",
		Short: "Populate users, portfolios and stocks",
	}

	var count int
	users := &cobra.Command{
		Use:   "users",
		Short: "Create admin1..adminN",
		RunE: func(c *cobra.Command, _ []string) error {
			result, err := a.deps.SeedService.SeedUsers(c.Context(), l1_service.DefaultUsers(count))
			if err != nil {
				return fmt.Errorf("failed to seed users: %w", err)
			}
			fmt.Fprintf(c.OutOrStdout(), "users: %d created, %d already existed\n", result.Created, result.Skipped)
			return nil
		},
	}
	users.Flags().IntVar(&count, "count", 3, "number of users")

	var cash string
	portfolios := &cobra.Command{
		Use:   "portfolios",
		Short: "Give every user a portfolio with starting cash",
		RunE: func(c *cobra.Command, _ []string) error {
			startingCash := a.deps.Secrets.Seed.StartingCash
			if cash != "" {
				parsed, err := decimal.NewFromString(cash)
				if err != nil {
					return fmt.Errorf("invalid --cash %q: %w", cash, err)
				}
				startingCash = parsed
			}
			result, err := a.deps.SeedService.SeedPortfolios(c.Context(), startingCash)
			if err != nil {
				return fmt.Errorf("failed to seed portfolios: %w", err)
			}
			fmt.Fprintf(c.OutOrStdout(), "portfolios: %d created, %d already existed\n", result.Created, result.Skipped)
			return nil
		},
	}
	portfolios.Flags().StringVar(&cash, "cash", "", "starting cash, defaults to the configured amount")

	var csvPath string
	var maxNew int
	stocks := &cobra.Command{
		Use:   "stocks",
		Short: "Load stocks and today's prices from a NASDAQ screener CSV",
		RunE: func(c *cobra.Command, _ []string) error {
			f, err := os.Open(csvPath)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", csvPath, err)
			}
			defer f.Close()

			limit := maxNew
			if limit == 0 {
				limit = a.deps.Secrets.Seed.MaxStocks
			}
			result, err := a.deps.SeedService.SeedStocks(c.Context(), f, limit)
			if err != nil {
				return fmt.Errorf("failed to seed stocks: %w", err)
			}
			fmt.Fprintf(
				c.OutOrStdout(),
				"stocks: %d created, %d already existed, %d prices added\n",
				result.StocksCreated,
				result.StocksSkipped,
				result.PricesCreated,
			)
			return nil
		},
	}
	stocks.Flags().StringVar(&csvPath, "csv-path", "", "path to the screener export")
	stocks.Flags().IntVar(&maxNew, "max", 0, "stop after this many new stocks")
	_ = stocks.MarkFlagRequired("csv-path")

	seed.AddCommand(users, portfolios, stocks)
	return seed
}
