package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Position is a portfolio's holding in one stock, valued at the stock's
// latest recorded price. LatestPrice is nil when the stock has no price or
// its latest row carries a null price.
type Position struct {
	HoldingID    uuid.UUID
	StockID      uuid.UUID
	Symbol       string
	Name         string
	Shares       decimal.Decimal
	AveragePrice decimal.Decimal
	LatestPrice  *decimal.Decimal
}

func (p Position) HasPrice() bool {
	return p.LatestPrice != nil && p.LatestPrice.GreaterThan(decimal.Zero)
}

func (p Position) CurrentValue() decimal.Decimal {
	if !p.HasPrice() {
		return decimal.Zero
	}
	return p.Shares.Mul(*p.LatestPrice)
}

type Allocation struct {
	TargetAllocationID uuid.UUID
	StockID            uuid.UUID
	Symbol             string
	Name               string
	TargetPercent      decimal.Decimal
}

// WeightedAveragePrice is the cost basis after adding shares bought at price
// to an existing position. It falls back to price when the resulting
// position is empty.
func WeightedAveragePrice(oldShares, oldAverage, shares, price decimal.Decimal) decimal.Decimal {
	totalShares := oldShares.Add(shares)
	if totalShares.LessThanOrEqual(decimal.Zero) {
		return price
	}
	totalValue := oldShares.Mul(oldAverage).Add(shares.Mul(price))
	return totalValue.DivRound(totalShares, PriceScale)
}

// RemainingAfterSale returns the shares left after selling and whether the
// holding should be removed. A removed holding reports zero remaining shares.
func RemainingAfterSale(held, sold decimal.Decimal) (remaining decimal.Decimal, deleted bool) {
	remaining = held.Sub(sold)
	if remaining.LessThanOrEqual(SharesNearZero) {
		return decimal.Zero, true
	}
	return remaining, false
}
