package bistfolio

import (
	"testing"
	"time"
)

func TestLoader_MissingFilesYieldEmptyState(t *testing.T) {
	dir := t.TempDir()

	l, err := LoadLedger(dir)
	if err != nil || l.Len() != 0 {
		t.Fatalf("LoadLedger() = %v, %v; want empty ledger", l, err)
	}
	p, err := LoadPrices(dir)
	if err != nil || p.Has("THYAO") {
		t.Fatalf("LoadPrices() = %v, %v; want empty table", p, err)
	}
	s, err := LoadSettings(dir)
	if err != nil || s.UsdTryRate != DefaultUsdTryRate {
		t.Fatalf("LoadSettings() = %v, %v; want default rate", s, err)
	}
}

func TestLoader_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	l := NewLedger()
	if err := l.Append(NewBuy(NewDate(2025, time.January, 2), "THYAO", 10, 311.5).WithRate(30)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := SaveLedger(dir, l); err != nil {
		t.Fatalf("SaveLedger() error = %v", err)
	}

	p := NewPriceTable()
	p.Add("THYAO", NewDate(2025, time.January, 3), 320)
	if err := SavePrices(dir, p); err != nil {
		t.Fatalf("SavePrices() error = %v", err)
	}

	if err := SaveSettings(dir, Settings{UsdTryRate: 41.2}); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	ledger, err := LoadLedger(dir)
	if err != nil || ledger.Len() != 1 {
		t.Fatalf("LoadLedger() = %v, %v", ledger, err)
	}
	prices, err := LoadPrices(dir)
	if err != nil {
		t.Fatalf("LoadPrices() error = %v", err)
	}
	if price, ok := prices.Latest("THYAO"); !ok || price != 320 {
		t.Errorf("Latest(THYAO) = %v, %v", price, ok)
	}
	settings, err := LoadSettings(dir)
	if err != nil || settings.UsdTryRate != 41.2 {
		t.Errorf("LoadSettings() = %v, %v", settings, err)
	}
}

func TestAppendTransaction(t *testing.T) {
	dir := t.TempDir()
	tx := NewBuy(NewDate(2025, time.January, 2), "THYAO", 10, 100)
	tx.ID = "t1"
	if err := AppendTransaction(dir, tx); err != nil {
		t.Fatalf("AppendTransaction() error = %v", err)
	}
	tx2 := NewSell(NewDate(2025, time.January, 3), "THYAO", 5, 110)
	tx2.ID = "t2"
	if err := AppendTransaction(dir, tx2); err != nil {
		t.Fatalf("AppendTransaction() error = %v", err)
	}

	l, err := LoadLedger(dir)
	if err != nil {
		t.Fatalf("LoadLedger() error = %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("ledger has %d transactions, want 2", l.Len())
	}

	if err := AppendTransaction(dir, NewBuy(Date{}, "", 0, 0)); err == nil {
		t.Error("AppendTransaction must reject invalid transactions")
	}
}
