package report

import (
	"bytes"
	"fmt"

	"portfoliosim/internal/domain"
	l1_service "portfoliosim/internal/service/l1"
	l2_service "portfoliosim/internal/service/l2"
	"portfoliosim/internal/util"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

const missing = "n/a"

func priceOrMissing(p *decimal.Decimal) string {
	if p == nil {
		return missing
	}
	return domain.FormatUSD(*p)
}

// RebalanceMarkdown renders the drift table and, once executed, the legs
// that ran.
func RebalanceMarkdown(portfolioName string, r *l2_service.RebalanceResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Rebalance for %s", portfolioName))

	report := r.Report
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Invested"),
			md.Bold(domain.FormatUSD(report.TotalInvested)),
		},
		Rows: [][]string{
			{"Cash Balance", domain.FormatUSD(report.CashBalance)},
		},
	})

	doc.H2("Drift")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Shares", "Price", "Value", "Current %", "Target %", "Trade"},
		Rows:   [][]string{},
	}
	for _, row := range report.Holdings {
		table.Rows = append(table.Rows, []string{
			row.Symbol,
			row.Shares.StringFixed(domain.ShareDisplayScale),
			priceOrMissing(row.LatestPrice),
			domain.FormatUSD(row.CurrentValue),
			row.CurrentPercent.StringFixed(2) + "%",
			row.ExpectedPercent.StringFixed(2) + "%",
			tradeLabel(row.SharesToTrade),
		})
	}
	doc.Table(table)

	if !r.Executed {
		doc.PlainText("Preview only, no trades were placed.")
		return doc.String()
	}

	doc.H2("Executed")
	if len(r.Operations) == 0 {
		doc.PlainText("Portfolio already matches its targets.")
	} else {
		doc.OrderedList(r.Operations...)
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Legs", fmt.Sprintf("%d", r.NumLegs)},
		Rows: [][]string{
			{"Total Sold", domain.FormatUSD(r.TotalSold)},
			{"Total Bought", domain.FormatUSD(r.TotalBought)},
			{md.Bold("New Balance"), md.Bold(domain.FormatUSD(r.NewBalance))},
		},
	})

	return doc.String()
}

func tradeLabel(shares decimal.Decimal) string {
	switch {
	case shares.IsPositive():
		return "buy " + shares.StringFixed(domain.ShareDisplayScale)
	case shares.IsNegative():
		return "sell " + shares.Abs().StringFixed(domain.ShareDisplayScale)
	}
	return "-"
}

func PriceHistoryMarkdown(h *l1_service.PriceHistory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", h.Stock.Symbol))
	doc.PlainText(fmt.Sprintf(
		"%s to %s, %d data points",
		util.FormatDate(h.Start),
		util.FormatDate(h.End),
		h.DataPoints,
	))

	if h.Stats != nil {
		doc.H2("Stats")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Current", fmt.Sprintf("%.2f", h.Stats.CurrentPrice)},
			Rows: [][]string{
				{"High", fmt.Sprintf("%.2f", h.Stats.MaxPrice)},
				{"Low", fmt.Sprintf("%.2f", h.Stats.MinPrice)},
				{"Average", fmt.Sprintf("%.2f", h.Stats.AvgPrice)},
				{"Change", fmt.Sprintf("%+.2f (%+.2f%%)", h.Stats.Change, h.Stats.ChangePercent)},
				{"Volatility", fmt.Sprintf("%.2f%%", h.Stats.Volatility)},
			},
		})
	}

	doc.H2("Prices")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Price", "Volume"},
		Rows:   [][]string{},
	}
	for _, p := range h.Points {
		volume := missing
		if p.Volume != nil {
			volume = fmt.Sprintf("%d", *p.Volume)
		}
		table.Rows = append(table.Rows, []string{
			util.FormatDate(p.Date),
			priceOrMissing(p.Price),
			volume,
		})
	}
	doc.Table(table)

	return doc.String()
}
