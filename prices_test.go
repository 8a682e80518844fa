package bistfolio

import (
	"testing"
	"time"
)

func TestPriceTable_LatestIsLastByDate(t *testing.T) {
	p := NewPriceTable()
	// inserted out of order: ingestion must sort
	p.Add("THYAO", NewDate(2025, time.March, 1), 300)
	p.Add("THYAO", NewDate(2025, time.January, 1), 250)
	p.Add("THYAO", NewDate(2025, time.February, 1), 280)

	price, ok := p.Latest("THYAO")
	if !ok {
		t.Fatal("Latest() reported no price")
	}
	if price != 300 {
		t.Errorf("Latest() = %v, want 300", price)
	}
}

func TestPriceTable_LatestUnknownTicker(t *testing.T) {
	p := NewPriceTable()
	if _, ok := p.Latest("NOPE"); ok {
		t.Error("Latest() reported a price for an unknown ticker")
	}
}

func TestPriceTable_AddUpsertsSameDay(t *testing.T) {
	p := NewPriceTable()
	day := NewDate(2025, time.January, 1)
	p.Add("THYAO", day, 250)
	p.Add("THYAO", day, 260)

	history := p.History("THYAO")
	if len(history) != 1 {
		t.Fatalf("expected 1 price point, got %d", len(history))
	}
	if history[0].Price != 260 {
		t.Errorf("same-day Add must overwrite, got %v", history[0].Price)
	}
}

func TestPriceTable_TickersSorted(t *testing.T) {
	p := NewPriceTable()
	day := NewDate(2025, time.January, 1)
	p.Add("SISE", day, 1)
	p.Add("AKBNK", day, 1)
	p.Add("THYAO", day, 1)

	var got []string
	for ticker := range p.Tickers() {
		got = append(got, ticker)
	}
	want := []string{"AKBNK", "SISE", "THYAO"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tickers() = %v, want %v", got, want)
		}
	}
}
