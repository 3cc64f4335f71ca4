package domain

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const Currency = money.USD

// FormatUSD renders an amount rounded to the cent, e.g. "$1,500.00".
func FormatUSD(d decimal.Decimal) string {
	cents := d.Round(MoneyScale).Shift(MoneyScale).IntPart()
	return money.New(cents, Currency).Display()
}
