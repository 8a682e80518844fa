package bistfolio

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestTransactionsCSV_RoundTrip(t *testing.T) {
	l := NewLedger()
	if err := l.Append(
		NewBuy(NewDate(2025, time.January, 2), "THYAO", 10, 311.5).WithRate(30.25).WithCommission(0.002),
		NewSell(NewDate(2025, time.February, 3), "THYAO", 4, 330),
	); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	var buf bytes.Buffer
	if err := ExportTransactionsCSV(&buf, l); err != nil {
		t.Fatalf("ExportTransactionsCSV() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "id,ticker,type,quantity,price,date,usdTryRate,commissionRate") {
		t.Fatalf("unexpected CSV header: %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}

	back, err := ImportTransactionsCSV(&buf)
	if err != nil {
		t.Fatalf("ImportTransactionsCSV() error = %v", err)
	}
	if back.Len() != l.Len() {
		t.Fatalf("imported %d transactions, want %d", back.Len(), l.Len())
	}
	for i, want := range l.Transactions() {
		if got := back.Transactions()[i]; !got.Equal(want) {
			t.Errorf("transaction %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestImportTransactionsCSV_MissingOptionalColumns(t *testing.T) {
	csv := "ticker,type,quantity,price,date\nTHYAO,buy,10,100,2025-01-02\nTHYAO,Sell,5,120,2025-02-03\n"
	l, err := ImportTransactionsCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportTransactionsCSV() error = %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("imported %d transactions, want 2", l.Len())
	}
	tx := l.Transactions()[0]
	if tx.ID == "" {
		t.Error("import must assign IDs to rows without one")
	}
	if tx.Type != Buy || tx.UsdTryRate != 0 || tx.CommissionRate != 0 {
		t.Errorf("unexpected transaction: %+v", tx)
	}
}

func TestImportTransactionsCSV_InvalidRow(t *testing.T) {
	tests := []struct{ name, csv string }{
		{"bad type", "ticker,type,quantity,price,date\nTHYAO,hold,10,100,2025-01-02\n"},
		{"bad quantity", "ticker,type,quantity,price,date\nTHYAO,buy,ten,100,2025-01-02\n"},
		{"bad date", "ticker,type,quantity,price,date\nTHYAO,buy,10,100,someday\n"},
		{"negative quantity", "ticker,type,quantity,price,date\nTHYAO,buy,-10,100,2025-01-02\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ImportTransactionsCSV(strings.NewReader(tt.csv)); err == nil {
				t.Error("import succeeded, want error")
			}
		})
	}
}

func TestPricesCSV_RoundTrip(t *testing.T) {
	p := NewPriceTable()
	p.Add("THYAO", NewDate(2025, time.January, 3), 315)
	p.Add("THYAO", NewDate(2025, time.January, 2), 311.5)
	p.Add("ASELS", NewDate(2025, time.January, 2), 60.4)

	var buf bytes.Buffer
	if err := ExportPricesCSV(&buf, p); err != nil {
		t.Fatalf("ExportPricesCSV() error = %v", err)
	}

	back, err := ImportPricesCSV(&buf)
	if err != nil {
		t.Fatalf("ImportPricesCSV() error = %v", err)
	}
	price, ok := back.Latest("THYAO")
	if !ok || price != 315 {
		t.Errorf("Latest(THYAO) = %v, %v; want 315", price, ok)
	}
	if got := back.History("ASELS"); len(got) != 1 || got[0].Price != 60.4 {
		t.Errorf("History(ASELS) = %+v", got)
	}
}

func TestImportPricesCSV_RejectsWrongHeader(t *testing.T) {
	if _, err := ImportPricesCSV(strings.NewReader("symbol,day,close\nTHYAO,2025-01-02,100\n")); err == nil {
		t.Error("import succeeded with wrong header, want error")
	}
}

func TestBackup_RoundTrip(t *testing.T) {
	l := NewLedger()
	if err := l.Append(
		NewBuy(NewDate(2025, time.January, 2), "THYAO", 10, 311.5).WithRate(30.25),
		NewSell(NewDate(2025, time.February, 3), "THYAO", 4, 330).WithCommission(0.002),
	); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	p := NewPriceTable()
	p.Add("THYAO", NewDate(2025, time.February, 3), 331)

	var buf bytes.Buffer
	if err := ExportBackup(&buf, l, p); err != nil {
		t.Fatalf("ExportBackup() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"stockPrices"`) {
		t.Fatalf("backup must keep the stockPrices key, got %s", buf.String())
	}

	ledger, prices, err := ImportBackup(&buf)
	if err != nil {
		t.Fatalf("ImportBackup() error = %v", err)
	}
	if ledger.Len() != 2 {
		t.Errorf("restored %d transactions, want 2", ledger.Len())
	}
	if price, ok := prices.Latest("THYAO"); !ok || price != 331 {
		t.Errorf("restored Latest(THYAO) = %v, %v", price, ok)
	}
}

func TestImportBackup_AllOrNothing(t *testing.T) {
	// one invalid transaction poisons the whole restore
	doc := `{
  "transactions": [
    {"id":"a","ticker":"THYAO","type":"BUY","quantity":10,"price":100,"date":"2025-01-02"},
    {"id":"b","ticker":"","type":"SELL","quantity":5,"price":110,"date":"2025-01-03"}
  ],
  "stockPrices": {}
}`
	if _, _, err := ImportBackup(strings.NewReader(doc)); err == nil {
		t.Error("ImportBackup succeeded with invalid transactions, want error")
	}
}
