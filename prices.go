package bistfolio

import (
	"iter"
	"slices"
	"sort"
	"strings"
)

// PricePoint is a single observed closing price for a ticker on a day.
type PricePoint struct {
	Date  Date    `json:"date"`
	Price float64 `json:"price"`
}

// PriceTable holds, per ticker, a price history sorted ascending by date.
// The sort order is maintained at ingestion time: readers, in particular
// Latest, rely on it and never re-sort.
type PriceTable struct {
	histories map[string][]PricePoint
}

// NewPriceTable returns a new empty price table.
func NewPriceTable() *PriceTable {
	return &PriceTable{histories: make(map[string][]PricePoint)}
}

// Add records a price for a ticker on a given day. An existing observation on
// the same day is overwritten, and the history is kept sorted.
func (p *PriceTable) Add(ticker string, day Date, price float64) {
	history := p.histories[ticker]
	idx := slices.IndexFunc(history, func(pt PricePoint) bool { return pt.Date == day })
	if idx >= 0 {
		history[idx].Price = price
	} else {
		history = append(history, PricePoint{Date: day, Price: price})
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].Date.Before(history[j].Date)
		})
	}
	p.histories[ticker] = history
}

// Has reports whether the table holds any price for the ticker.
func (p *PriceTable) Has(ticker string) bool {
	return len(p.histories[ticker]) > 0
}

// History returns the ticker's price history in ascending date order.
func (p *PriceTable) History(ticker string) []PricePoint {
	return slices.Clone(p.histories[ticker])
}

// Latest resolves the most recent known price for a ticker. Since histories
// are sorted ascending, this is the last element; ok is false when the ticker
// has no history.
func (p *PriceTable) Latest(ticker string) (price float64, ok bool) {
	history := p.histories[ticker]
	if len(history) == 0 {
		return 0, false
	}
	return history[len(history)-1].Price, true
}

// Tickers iterates over the table's tickers in lexical order, so that
// exports and reports are deterministic.
func (p *PriceTable) Tickers() iter.Seq[string] {
	return func(yield func(string) bool) {
		tickers := make([]string, 0, len(p.histories))
		for t := range p.histories {
			tickers = append(tickers, t)
		}
		slices.SortFunc(tickers, strings.Compare)
		for _, t := range tickers {
			if !yield(t) {
				return
			}
		}
	}
}
