package bistfolio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export formats: CSV for
// spreadsheet round-trips, and a single-document JSON backup. They must stay
// compatible with files produced by earlier versions of the tracker, so the
// headers and key names are fixed.

// transactionsCSVHeader is the canonical column order for transaction exports.
var transactionsCSVHeader = []string{"id", "ticker", "type", "quantity", "price", "date", "usdTryRate", "commissionRate"}

// fmtNumber renders a float for CSV without the drift of %g round-trips.
func fmtNumber(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// ExportTransactionsCSV writes the ledger's transactions to w as CSV, with
// empty cells for absent optional fields.
func ExportTransactionsCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(transactionsCSVHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, t := range l.Transactions() {
		record := []string{t.ID, t.Ticker, string(t.Type), fmtNumber(t.Quantity), fmtNumber(t.Price), t.Date.String(), "", ""}
		if t.UsdTryRate > 0 {
			record[6] = fmtNumber(t.UsdTryRate)
		}
		if t.CommissionRate > 0 {
			record[7] = fmtNumber(t.CommissionRate)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write transaction %q: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportTransactionsCSV reads a transactions CSV and returns a validated
// ledger. Columns may appear in any order; optional columns may be missing
// entirely, and the type tag is matched case-insensitively.
func ImportTransactionsCSV(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows happen in hand-edited files
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read transactions CSV: %w", err)
	}
	if len(rows) < 2 {
		return NewLedger(), nil
	}

	col := make(map[string]int)
	for i, h := range rows[0] {
		col[strings.TrimSpace(h)] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	ledger := NewLedger()
	for n, row := range rows[1:] {
		line := n + 2 // 1-based, after the header
		typ, err := ParseTransactionType(field(row, "type"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		quantity, err := parseCSVNumber(field(row, "quantity"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid quantity: %w", line, err)
		}
		price, err := parseCSVNumber(field(row, "price"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid price: %w", line, err)
		}
		day, err := ParseDate(field(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		t := Transaction{
			ID:       field(row, "id"),
			Ticker:   field(row, "ticker"),
			Type:     typ,
			Quantity: quantity,
			Price:    price,
			Date:     day,
		}
		if s := field(row, "usdTryRate"); s != "" {
			if t.UsdTryRate, err = parseCSVNumber(s); err != nil {
				return nil, fmt.Errorf("line %d: invalid usdTryRate: %w", line, err)
			}
		}
		if s := field(row, "commissionRate"); s != "" {
			if t.CommissionRate, err = parseCSVNumber(s); err != nil {
				return nil, fmt.Errorf("line %d: invalid commissionRate: %w", line, err)
			}
		}
		if err := ledger.Append(t); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return ledger, nil
}

func parseCSVNumber(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// ExportPricesCSV writes the price table as "ticker,date,price" rows, sorted
// by ticker for deterministic output.
func ExportPricesCSV(w io.Writer, p *PriceTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ticker", "date", "price"}); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for ticker := range p.Tickers() {
		for _, pt := range p.History(ticker) {
			if err := cw.Write([]string{ticker, pt.Date.String(), fmtNumber(pt.Price)}); err != nil {
				return fmt.Errorf("cannot write prices for %q: %w", ticker, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportPricesCSV reads a "ticker,date,price" CSV into a price table,
// sorting each ticker's history ascending on ingestion.
func ImportPricesCSV(r io.Reader) (*PriceTable, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read prices CSV: %w", err)
	}
	if len(rows) == 0 {
		return NewPriceTable(), nil
	}
	header := rows[0]
	if len(header) < 3 || strings.TrimSpace(header[0]) != "ticker" || strings.TrimSpace(header[1]) != "date" || strings.TrimSpace(header[2]) != "price" {
		return nil, fmt.Errorf(`invalid CSV headers for prices, expected "ticker,date,price"`)
	}

	table := NewPriceTable()
	for n, row := range rows[1:] {
		line := n + 2
		ticker := strings.TrimSpace(row[0])
		if ticker == "" {
			continue
		}
		day, err := ParseDate(row[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		price, err := parseCSVNumber(row[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid price: %w", line, err)
		}
		table.Add(ticker, day, price)
	}
	return table, nil
}

// Backup is the single-document JSON snapshot of a whole portfolio, the
// format used by the "export backup" and "import backup" commands.
type Backup struct {
	Transactions []jtransaction                `json:"transactions"`
	StockPrices  map[string]map[string]float64 `json:"stockPrices"`
}

// ExportBackup writes the whole state (ledger and prices) to w as one
// indented JSON document.
func ExportBackup(w io.Writer, l *Ledger, p *PriceTable) error {
	b := Backup{
		Transactions: make([]jtransaction, 0, l.Len()),
		StockPrices:  make(map[string]map[string]float64),
	}
	for _, t := range l.Transactions() {
		b.Transactions = append(b.Transactions, encodeTransaction(t))
	}
	for ticker := range p.Tickers() {
		history := make(map[string]float64)
		for _, pt := range p.History(ticker) {
			history[pt.Date.String()] = pt.Price
		}
		b.StockPrices[ticker] = history
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// ImportBackup reads a backup document and returns the restored ledger and
// price table. The import is all-or-nothing: any invalid transaction or
// price aborts the whole restore, so a bad file cannot half-replace state.
func ImportBackup(r io.Reader) (*Ledger, *PriceTable, error) {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, nil, fmt.Errorf("cannot parse backup file: %w", err)
	}
	ledger := NewLedger()
	for _, j := range b.Transactions {
		if err := ledger.Append(j.transaction()); err != nil {
			return nil, nil, fmt.Errorf("backup contains invalid transactions: %w", err)
		}
	}
	table := NewPriceTable()
	for ticker, history := range b.StockPrices {
		for day, price := range history {
			d, err := ParseDate(day)
			if err != nil {
				return nil, nil, fmt.Errorf("backup contains invalid prices for %q: %w", ticker, err)
			}
			table.Add(ticker, d, price)
		}
	}
	return ledger, table, nil
}
