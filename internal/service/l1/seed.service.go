package l1_service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"portfoliosim/internal/db/models/postgres/public/model"
	"portfoliosim/internal/domain"
	"portfoliosim/internal/logger"
	"portfoliosim/internal/repository"
	"portfoliosim/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=seed.service.go -destination=mocks/mock_seed.service.go

const DefaultMaxNewStocks = 100

type SeedService interface {
	SeedUsers(ctx context.Context, users []model.UserAccount) (*SeedResult, error)
	// SeedPortfolios gives every user without one a portfolio named after
	// them, funded with startingCash.
	SeedPortfolios(ctx context.Context, startingCash decimal.Decimal) (*SeedResult, error)
	// SeedStocks reads a NASDAQ screener export and records each stock with
	// today's price. It stops once maxNew stocks have been created.
	SeedStocks(ctx context.Context, r io.Reader, maxNew int) (*StockSeedResult, error)
}

type seedServiceHandler struct {
	TxRunner              repository.TxRunner
	UserAccountRepository repository.UserAccountRepository
	PortfolioRepository   repository.PortfolioRepository
	StockRepository       repository.StockRepository
	StockPriceRepository  repository.StockPriceRepository
	Now                   func() time.Time
}

func NewSeedService(
	txRunner repository.TxRunner,
	userAccountRepository repository.UserAccountRepository,
	portfolioRepository repository.PortfolioRepository,
	stockRepository repository.StockRepository,
	stockPriceRepository repository.StockPriceRepository,
) SeedService {
	return seedServiceHandler{
		TxRunner:              txRunner,
		UserAccountRepository: userAccountRepository,
		PortfolioRepository:   portfolioRepository,
		StockRepository:       stockRepository,
		StockPriceRepository:  stockPriceRepository,
		Now:                   time.Now,
	}
}

type SeedResult struct {
	Created int
	Skipped int
}

type StockSeedResult struct {
	StocksCreated int
	StocksSkipped int
	PricesCreated int
}

// DefaultUsers returns admin1..adminN.
func DefaultUsers(count int) []model.UserAccount {
	out := make([]model.UserAccount, 0, count)
	for i := 1; i <= count; i++ {
		username := fmt.Sprintf("admin%d", i)
		out = append(out, model.UserAccount{
			Username: username,
			Email:    username + "@example.com",
		})
	}
	return out
}

func PortfolioName(username string) string {
	return username + "'s portfolio"
}

func (h seedServiceHandler) SeedUsers(ctx context.Context, users []model.UserAccount) (*SeedResult, error) {
	log := logger.FromContext(ctx)
	result := &SeedResult{}
	err := h.TxRunner.RunInTx(ctx, func(tx repository.DB) error {
		for _, u := range users {
			_, created, err := h.UserAccountRepository.GetOrCreate(tx, u)
			if err != nil {
				return err
			}
			if created {
				result.Created++
				log.Infow("created user", "username", u.Username)
			} else {
				result.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (h seedServiceHandler) SeedPortfolios(ctx context.Context, startingCash decimal.Decimal) (*SeedResult, error) {
	startingCash = startingCash.Round(domain.MoneyScale)
	if startingCash.IsNegative() {
		return nil, fmt.Errorf("%w: starting cash must be >= 0, got %s", domain.ErrInvalidAmount, startingCash.String())
	}

	log := logger.FromContext(ctx)
	result := &SeedResult{}
	err := h.TxRunner.RunInTx(ctx, func(tx repository.DB) error {
		users, err := h.UserAccountRepository.List(tx)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			return fmt.Errorf("%w: no users, seed users first", domain.ErrNotFound)
		}

		for _, u := range users {
			name := PortfolioName(u.Username)
			existing, err := h.PortfolioRepository.GetByOwnerAndName(tx, u.UserAccountID, name)
			if err != nil {
				return err
			}
			if existing != nil {
				result.Skipped++
				continue
			}
			_, err = h.PortfolioRepository.Add(tx, model.Portfolio{
				OwnerID:     u.UserAccountID,
				Name:        name,
				CashBalance: startingCash,
			})
			if err != nil {
				return err
			}
			result.Created++
			log.Infow("created portfolio", "name", name, "cash", domain.FormatUSD(startingCash))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type screenerRow struct {
	Symbol   string `csv:"Symbol"`
	Name     string `csv:"Name"`
	LastSale string `csv:"Last Sale"`
	Volume   string `csv:"Volume"`
}

func (h seedServiceHandler) SeedStocks(ctx context.Context, r io.Reader, maxNew int) (*StockSeedResult, error) {
	rows := []screenerRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse screener csv: %w", err)
	}
	if maxNew <= 0 {
		maxNew = DefaultMaxNewStocks
	}

	today := util.DateOf(h.Now())
	result := &StockSeedResult{}
	err := h.TxRunner.RunInTx(ctx, func(tx repository.DB) error {
		for _, row := range rows {
			symbol := strings.TrimSpace(row.Symbol)
			if symbol == "" {
				continue
			}
			stock, created, err := h.StockRepository.GetOrCreate(tx, model.Stock{
				Symbol: symbol,
				Name:   strings.TrimSpace(row.Name),
			})
			if err != nil {
				return err
			}
			if created {
				result.StocksCreated++
			} else {
				result.StocksSkipped++
			}

			if price := parseLastSale(row.LastSale); price != nil {
				inserted, err := h.StockPriceRepository.AddMany(tx, []model.StockPrice{{
					StockID: stock.StockID,
					Date:    today,
					Price:   price,
					Volume:  parseVolume(row.Volume),
				}})
				if err != nil {
					return err
				}
				result.PricesCreated += int(inserted)
			}

			if result.StocksCreated >= maxNew {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow(
		"seeded stocks",
		"created", result.StocksCreated,
		"skipped", result.StocksSkipped,
		"prices", result.PricesCreated,
	)

	return result, nil
}

// parseLastSale reads values like "$1,234.56". Anything else has no price.
func parseLastSale(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "$") {
		return nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", ""))
	if err != nil {
		return nil
	}
	d = d.Round(domain.PriceScale)
	return &d
}

func parseVolume(s string) *int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
