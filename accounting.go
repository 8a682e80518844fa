package bistfolio

import (
	"sort"

	"github.com/rs/zerolog"
)

// AccountingSystem combines the transaction ledger with the price table and
// the current USD/TRY rate. It is a stateless calculator: every call to
// Compute replays the whole ledger from scratch, so the system can be rebuilt
// at will from its inputs.
type AccountingSystem struct {
	Ledger     *Ledger
	Prices     *PriceTable
	UsdTryRate float64 // current TRY-per-USD rate, used for unrealized USD figures only

	logger zerolog.Logger
}

// NewAccountingSystem creates an accounting system over a ledger and price
// table. Non-fatal diagnostics (a sell with no matching lots) are emitted on
// the given logger.
func NewAccountingSystem(ledger *Ledger, prices *PriceTable, usdTryRate float64, logger zerolog.Logger) *AccountingSystem {
	return &AccountingSystem{
		Ledger:     ledger,
		Prices:     prices,
		UsdTryRate: usdTryRate,
		logger:     logger,
	}
}

// Compute replays the ledger chronologically, matching sells against buy
// lots FIFO, and returns the current portfolio valuation together with the
// realized gain/loss history. It has no side effects beyond log warnings and
// is deterministic for identical inputs.
func (as *AccountingSystem) Compute() (*Portfolio, []RealizedGainLoss) {
	return Compute(as.Ledger.Transactions(), as.Prices, as.UsdTryRate, as.logger)
}

// Compute is the valuation engine behind [AccountingSystem.Compute]. The
// transactions may arrive in any order: a working copy is sorted by date,
// with ties broken by the input's relative order so that same-day FIFO
// consumption follows entry order.
func Compute(transactions []Transaction, prices *PriceTable, usdTryRate float64, logger zerolog.Logger) (*Portfolio, []RealizedGainLoss) {
	sorted := make([]Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	buyLots := make(map[string]*lotQueue)
	var tickers []string // queue creation order, for deterministic holdings output
	realizedGains := []RealizedGainLoss{}

	for _, t := range sorted {
		queue, ok := buyLots[t.Ticker]
		if !ok {
			queue = &lotQueue{}
			buyLots[t.Ticker] = queue
			tickers = append(tickers, t.Ticker)
		}

		if t.Type == Buy {
			*queue = append(*queue, buyLot{
				remaining:      t.Quantity,
				unitPrice:      t.Price,
				date:           t.Date,
				usdTryRate:     t.UsdTryRate,
				commissionRate: t.CommissionRate,
			})
			continue
		}

		// Sell: zero and near-zero quantities are no-ops, not errors.
		if t.Quantity <= Epsilon {
			continue
		}
		if len(*queue) == 0 {
			logger.Warn().
				Str("ticker", t.Ticker).
				Str("date", t.Date.String()).
				Str("id", t.ID).
				Msg("sell transaction has no buy lots to match, skipping")
			continue
		}

		// If the lots run out before the sell quantity is satisfied, the
		// remainder is dropped: there is no short position to open.
		costBasis, costBasisUsd, usdIncomplete := queue.consume(t.Quantity)

		grossProceeds := t.Quantity * t.Price
		netProceeds := grossProceeds * (1 - t.CommissionRate)

		record := RealizedGainLoss{
			ID:              t.ID,
			Ticker:          t.Ticker,
			Quantity:        t.Quantity,
			SellDate:        t.Date,
			SellPrice:       t.Price,
			CostBasis:       costBasis,
			RealizedGain:    netProceeds - costBasis,
			NetSellProceeds: netProceeds,
		}

		// USD figures are all-or-nothing: they need the sell's own rate and
		// a rate on every consumed lot fragment.
		if t.UsdTryRate > 0 && !usdIncomplete {
			netProceedsUsd := netProceeds / t.UsdTryRate
			record.CostBasisUsd = ptr(costBasisUsd)
			record.NetSellProceedsUsd = ptr(netProceedsUsd)
			record.RealizedGainUsd = ptr(netProceedsUsd - costBasisUsd)
		}
		realizedGains = append(realizedGains, record)
	}

	portfolio := &Portfolio{Holdings: []StockHolding{}}
	for _, ticker := range tickers {
		queue := *buyLots[ticker]
		quantity := queue.totalQuantity()
		if quantity <= Epsilon {
			continue // fully divested
		}
		totalCost, totalCostUsd := queue.totalCost()

		h := StockHolding{
			Ticker:      ticker,
			Quantity:    quantity,
			TotalCost:   totalCost,
			AverageCost: totalCost / quantity,
		}

		if price, ok := prices.Latest(ticker); ok {
			marketValue := quantity * price
			unrealized := marketValue - totalCost
			h.CurrentPrice = ptr(price)
			h.MarketValue = ptr(marketValue)
			h.UnrealizedGainLoss = ptr(unrealized)
			if totalCost > 0 {
				h.UnrealizedGainLossPercent = ptr(unrealized / totalCost * 100)
			}
			if usdTryRate > 0 {
				marketValueUsd := marketValue / usdTryRate
				h.MarketValueUsd = ptr(marketValueUsd)
				if totalCostUsd > 0 {
					h.UnrealizedGainLossUsd = ptr(marketValueUsd - totalCostUsd)
				}
			}
		}

		if totalCostUsd > 0 {
			h.TotalCostUsd = ptr(totalCostUsd)
			h.AverageCostUsd = ptr(totalCostUsd / quantity)
		}

		portfolio.Holdings = append(portfolio.Holdings, h)
	}

	for _, h := range portfolio.Holdings {
		portfolio.TotalMarketValue += orZero(h.MarketValue)
		portfolio.TotalCost += h.TotalCost
		portfolio.TotalMarketValueUsd += orZero(h.MarketValueUsd)
		portfolio.TotalCostUsd += orZero(h.TotalCostUsd)
	}
	portfolio.TotalUnrealizedGainLoss = portfolio.TotalMarketValue - portfolio.TotalCost
	if portfolio.TotalCost > 0 {
		portfolio.TotalUnrealizedGainLossPercent = portfolio.TotalUnrealizedGainLoss / portfolio.TotalCost * 100
	}
	portfolio.TotalUnrealizedGainLossUsd = portfolio.TotalMarketValueUsd - portfolio.TotalCostUsd

	return portfolio, realizedGains
}

func ptr(v float64) *float64 { return &v }

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
