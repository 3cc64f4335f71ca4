package main

import (
	"fmt"
	"strings"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/report"
	"portfoliosim/internal/util"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// findStock matches a stock by id or, case-insensitively, by symbol.
func findStock(stocks []model.Stock, ref string) (*model.Stock, error) {
	id, idErr := uuid.Parse(ref)
	for _, s := range stocks {
		if idErr == nil && s.StockID == id {
			return &s, nil
		}
		if strings.EqualFold(s.Symbol, ref) {
			return &s, nil
		}
	}
	return nil, fmt.Errorf("%w: stock %s", domain.ErrNotFound, ref)
}

func newHistoryCmd(a *app) *cobra.Command {
	var stock, start, end string
	c := &cobra.Command{
		Use:   "history",
		Short: "Print a stock's price history and stats",
		RunE: func(c *cobra.Command, _ []string) error {
			priceService := a.deps.ApiHandler.PriceService
			stocks, err := priceService.ListStocks(c.Context())
			if err != nil {
				return err
			}
			s, err := findStock(stocks, stock)
			if err != nil {
				return err
			}

			history, err := priceService.GetPriceHistory(c.Context(), s.StockID, util.ParseDate(start), util.ParseDate(end))
			if err != nil {
				return fmt.Errorf("failed to get history for %s: %w", s.Symbol, err)
			}
			return a.render(c, report.PriceHistoryMarkdown(history))
		},
	}
	c.Flags().StringVar(&stock, "stock", "", "symbol or stock id")
	c.Flags().StringVar(&start, "start", "", "first date, YYYY-MM-DD")
	c.Flags().StringVar(&end, "end", "", "last date, YYYY-MM-DD")
	_ = c.MarkFlagRequired("stock")
	return c
}
