package bistfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// File names inside a portfolio directory.
const (
	LedgerFile   = "transactions.jsonl"
	PricesFile   = "prices.jsonl"
	SettingsFile = "settings.json"
)

// Settings holds the small bits of state that are neither transactions nor
// prices.
type Settings struct {
	UsdTryRate float64 `json:"usdTryRate"`
}

// LoadLedger reads the ledger from a portfolio directory. A missing file is
// not an error: it yields an empty ledger, so a fresh directory just works.
func LoadLedger(dir string) (*Ledger, error) {
	f, err := os.Open(filepath.Join(dir, LedgerFile))
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file: %w", err)
	}
	defer f.Close()
	return DecodeLedger(f)
}

// SaveLedger writes the whole ledger to the portfolio directory.
func SaveLedger(dir string, l *Ledger) error {
	return writeFileAtomic(dir, LedgerFile, func(f *os.File) error {
		return EncodeLedger(f, l)
	})
}

// AppendTransaction appends a single transaction to the ledger file without
// rewriting it. A transaction without an ID gets one here, so the persisted
// ID is stable across reloads.
func AppendTransaction(dir string, t Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create portfolio directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, LedgerFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open ledger file: %w", err)
	}
	defer f.Close()
	return EncodeTransaction(f, t)
}

// LoadPrices reads the price table from a portfolio directory; a missing
// file yields an empty table.
func LoadPrices(dir string) (*PriceTable, error) {
	f, err := os.Open(filepath.Join(dir, PricesFile))
	if errors.Is(err, fs.ErrNotExist) {
		return NewPriceTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open prices file: %w", err)
	}
	defer f.Close()
	return DecodePrices(f)
}

// SavePrices writes the price table to the portfolio directory.
func SavePrices(dir string, p *PriceTable) error {
	return writeFileAtomic(dir, PricesFile, func(f *os.File) error {
		return EncodePrices(f, p)
	})
}

// LoadSettings reads the settings file; a missing file yields the defaults.
func LoadSettings(dir string) (Settings, error) {
	settings := Settings{UsdTryRate: DefaultUsdTryRate}
	content, err := os.ReadFile(filepath.Join(dir, SettingsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("cannot read settings file: %w", err)
	}
	if err := json.Unmarshal(content, &settings); err != nil {
		return settings, fmt.Errorf("cannot parse settings file: %w", err)
	}
	if settings.UsdTryRate <= 0 {
		settings.UsdTryRate = DefaultUsdTryRate
	}
	return settings, nil
}

// SaveSettings writes the settings file.
func SaveSettings(dir string, s Settings) error {
	return writeFileAtomic(dir, SettingsFile, func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	})
}

// writeFileAtomic writes through a temp file and renames, so an interrupted
// save never truncates the previous data.
func writeFileAtomic(dir, name string, write func(*os.File) error) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create portfolio directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, name+".tmp*")
	if err != nil {
		return fmt.Errorf("cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(dir, name))
}
