package bistfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jtransaction is the persisted form of a Transaction. Numeric fields go
// through decimal so that a ledger survives encode/decode cycles without the
// float formatting drift of %g round-trips (a commission of 0.002 stays
// "0.002" on disk).
type jtransaction struct {
	ID             string           `json:"id"`
	Ticker         string           `json:"ticker"`
	Type           TransactionType  `json:"type"`
	Quantity       decimal.Decimal  `json:"quantity"`
	Price          decimal.Decimal  `json:"price"`
	Date           Date             `json:"date"`
	UsdTryRate     *decimal.Decimal `json:"usdTryRate,omitempty"`
	CommissionRate *decimal.Decimal `json:"commissionRate,omitempty"`
}

func encodeTransaction(t Transaction) jtransaction {
	j := jtransaction{
		ID:       t.ID,
		Ticker:   t.Ticker,
		Type:     t.Type,
		Quantity: decimal.NewFromFloat(t.Quantity),
		Price:    decimal.NewFromFloat(t.Price),
		Date:     t.Date,
	}
	if t.UsdTryRate > 0 {
		rate := decimal.NewFromFloat(t.UsdTryRate)
		j.UsdTryRate = &rate
	}
	if t.CommissionRate > 0 {
		commission := decimal.NewFromFloat(t.CommissionRate)
		j.CommissionRate = &commission
	}
	return j
}

func (j jtransaction) transaction() Transaction {
	t := Transaction{
		ID:       j.ID,
		Ticker:   j.Ticker,
		Type:     j.Type,
		Quantity: j.Quantity.InexactFloat64(),
		Price:    j.Price.InexactFloat64(),
		Date:     j.Date,
	}
	if j.UsdTryRate != nil {
		t.UsdTryRate = j.UsdTryRate.InexactFloat64()
	}
	if j.CommissionRate != nil {
		t.CommissionRate = j.CommissionRate.InexactFloat64()
	}
	return t
}

// EncodeTransaction writes a single transaction to w as one JSONL line.
func EncodeTransaction(w io.Writer, t Transaction) error {
	data, err := json.Marshal(encodeTransaction(t))
	if err != nil {
		return fmt.Errorf("cannot marshal transaction %q: %w", t.ID, err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// EncodeLedger writes all the ledger's transactions to w in JSONL format,
// in chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL stream of transactions and returns a sorted,
// validated Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var j jtransaction
		if err := json.Unmarshal(line, &j); err != nil {
			return nil, fmt.Errorf("cannot parse transaction line %q: %w", string(line), err)
		}
		if err := ledger.Append(j.transaction()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	return ledger, nil
}

// jhistory is the persisted form of one ticker's price history: a single
// JSONL line with the dates as keys.
type jhistory struct {
	Ticker  string             `json:"ticker"`
	History map[string]float64 `json:"history"`
}

// EncodePrices writes the price table to w, one JSONL line per ticker, in
// lexical ticker order.
func EncodePrices(w io.Writer, p *PriceTable) error {
	for ticker := range p.Tickers() {
		j := jhistory{Ticker: ticker, History: make(map[string]float64)}
		for _, pt := range p.History(ticker) {
			j.History[pt.Date.String()] = pt.Price
		}
		data, err := json.Marshal(j)
		if err != nil {
			return fmt.Errorf("cannot marshal prices for %q: %w", ticker, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write prices: %w", err)
		}
	}
	return nil
}

// DecodePrices reads a JSONL stream of per-ticker histories into a price
// table. Histories are sorted ascending on ingestion, whatever the key order
// of the source document.
func DecodePrices(r io.Reader) (*PriceTable, error) {
	table := NewPriceTable()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var j jhistory
		if err := json.Unmarshal(line, &j); err != nil {
			return nil, fmt.Errorf("cannot parse price line %q: %w", string(line), err)
		}
		for day, price := range j.History {
			d, err := ParseDate(day)
			if err != nil {
				return nil, fmt.Errorf("cannot parse price history for %q: %w", j.Ticker, err)
			}
			table.Add(j.Ticker, d, price)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read prices: %w", err)
	}
	return table, nil
}
