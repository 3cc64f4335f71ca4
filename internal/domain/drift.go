package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DriftRow struct {
	StockID         uuid.UUID
	Symbol          string
	Name            string
	Shares          decimal.Decimal
	LatestPrice     *decimal.Decimal
	CurrentValue    decimal.Decimal
	ExpectedPercent decimal.Decimal
	CurrentPercent  decimal.Decimal
	ObjectiveValue  decimal.Decimal
	DeltaValue      decimal.Decimal
	// SharesToTrade is signed: negative sells, positive buys.
	SharesToTrade decimal.Decimal
}

type DriftReport struct {
	Holdings      []DriftRow
	Allocations   []Allocation
	TotalInvested decimal.Decimal
	CashBalance   decimal.Decimal
}

// ComputeDrift compares every position against its target allocation.
// Cash is reported but not part of the invested total, so targets describe
// how the invested value should be split.
func ComputeDrift(cash decimal.Decimal, positions []Position, allocations []Allocation) DriftReport {
	targets := map[uuid.UUID]decimal.Decimal{}
	for _, a := range allocations {
		targets[a.StockID] = a.TargetPercent
	}

	totalInvested := decimal.Zero
	for _, p := range positions {
		totalInvested = totalInvested.Add(p.CurrentValue())
	}

	rows := make([]DriftRow, 0, len(positions))
	for _, p := range positions {
		currentValue := p.CurrentValue()
		expected, ok := targets[p.StockID]
		if !ok {
			expected = decimal.Zero
		}

		currentPercent := decimal.Zero
		if totalInvested.GreaterThan(decimal.Zero) {
			currentPercent = currentValue.Mul(OneHundred).Div(totalInvested)
		}
		objectiveValue := expected.Shift(-2).Mul(totalInvested)
		deltaValue := objectiveValue.Sub(currentValue)

		sharesToTrade := decimal.Zero
		if p.HasPrice() {
			sharesToTrade = deltaValue.Div(*p.LatestPrice)
		}

		rows = append(rows, DriftRow{
			StockID:         p.StockID,
			Symbol:          p.Symbol,
			Name:            p.Name,
			Shares:          p.Shares,
			LatestPrice:     p.LatestPrice,
			CurrentValue:    currentValue,
			ExpectedPercent: expected,
			CurrentPercent:  currentPercent,
			ObjectiveValue:  objectiveValue,
			DeltaValue:      deltaValue,
			SharesToTrade:   sharesToTrade,
		})
	}

	return DriftReport{
		Holdings:      rows,
		Allocations:   allocations,
		TotalInvested: totalInvested,
		CashBalance:   cash,
	}
}

type TradeSide string

const (
	TradeSide_Buy  TradeSide = "BUY"
	TradeSide_Sell TradeSide = "SELL"
)

type TradeLeg struct {
	StockID uuid.UUID
	Symbol  string
	Side    TradeSide
	Shares  decimal.Decimal
	Price   decimal.Decimal
	// Total is the cash the leg moves: sale income for sells, purchase cost
	// for buys.
	Total decimal.Decimal
}

type RebalancePlan struct {
	Sells             []TradeLeg
	Buys              []TradeLeg
	TotalFromSales    decimal.Decimal
	TotalForPurchases decimal.Decimal
	AvailableFunds    decimal.Decimal
}

func (p RebalancePlan) NumLegs() int {
	return len(p.Sells) + len(p.Buys)
}

// PlanRebalance turns a drift report into sell and buy legs and checks that
// cash plus sale proceeds covers every purchase. Sell quantities are rounded
// up and capped at the held shares; buy quantities are truncated, so the
// planned totals never understate what execution will need.
func PlanRebalance(report DriftReport) (*RebalancePlan, error) {
	plan := &RebalancePlan{
		Sells:             []TradeLeg{},
		Buys:              []TradeLeg{},
		TotalFromSales:    decimal.Zero,
		TotalForPurchases: decimal.Zero,
	}

	for _, row := range report.Holdings {
		if row.LatestPrice == nil || row.LatestPrice.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: no valid price for %s", ErrNoPriceAvailable, row.Symbol)
		}
		price := *row.LatestPrice

		switch {
		case row.SharesToTrade.IsNegative():
			shares := row.SharesToTrade.Abs().RoundUp(SharesScale)
			if shares.GreaterThan(row.Shares) {
				shares = row.Shares
			}
			if shares.IsZero() {
				continue
			}
			leg := TradeLeg{
				StockID: row.StockID,
				Symbol:  row.Symbol,
				Side:    TradeSide_Sell,
				Shares:  shares,
				Price:   price,
				Total:   SaleIncome(shares, price),
			}
			plan.Sells = append(plan.Sells, leg)
			plan.TotalFromSales = plan.TotalFromSales.Add(leg.Total)
		case row.SharesToTrade.IsPositive():
			shares := row.SharesToTrade.Truncate(SharesScale)
			if shares.IsZero() {
				continue
			}
			leg := TradeLeg{
				StockID: row.StockID,
				Symbol:  row.Symbol,
				Side:    TradeSide_Buy,
				Shares:  shares,
				Price:   price,
				Total:   PurchaseCost(shares, price),
			}
			plan.Buys = append(plan.Buys, leg)
			plan.TotalForPurchases = plan.TotalForPurchases.Add(leg.Total)
		}
	}

	plan.AvailableFunds = report.CashBalance.Add(plan.TotalFromSales)
	if plan.AvailableFunds.LessThan(plan.TotalForPurchases) {
		return nil, fmt.Errorf(
			"%w to rebalance: available (including sales) %s, required %s",
			ErrInsufficientFunds,
			FormatUSD(plan.AvailableFunds),
			FormatUSD(plan.TotalForPurchases),
		)
	}

	return plan, nil
}
