package bistfolio

import (
	"fmt"
	"math"
	"strings"
)

// TransactionType identifies the side of a transaction.
type TransactionType string

const (
	Buy  TransactionType = "BUY"
	Sell TransactionType = "SELL"
)

// ParseTransactionType parses a string into a TransactionType. The tag is
// case-insensitive so that hand-edited CSV files remain importable.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Buy):
		return Buy, nil
	case string(Sell):
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is a single immutable entry of the ledger: a purchase or a sale
// of a security, priced in TRY.
//
// UsdTryRate is the TRY-per-USD rate in effect when the trade settled; zero
// means the rate was not recorded. CommissionRate is a fraction of the traded
// amount (0.002 for 0.2%); zero means no commission.
type Transaction struct {
	ID             string          `json:"id"`
	Ticker         string          `json:"ticker"`
	Type           TransactionType `json:"type"`
	Quantity       float64         `json:"quantity"`
	Price          float64         `json:"price"` // unit price in TRY
	Date           Date            `json:"date"`
	UsdTryRate     float64         `json:"usdTryRate,omitempty"`
	CommissionRate float64         `json:"commissionRate,omitempty"`
}

// NewBuy creates a buy transaction. The ID is assigned by the ledger on append.
func NewBuy(day Date, ticker string, quantity, price float64) Transaction {
	return Transaction{Ticker: ticker, Type: Buy, Quantity: quantity, Price: price, Date: day}
}

// NewSell creates a sell transaction. The ID is assigned by the ledger on append.
func NewSell(day Date, ticker string, quantity, price float64) Transaction {
	return Transaction{Ticker: ticker, Type: Sell, Quantity: quantity, Price: price, Date: day}
}

// WithRate returns a copy of the transaction carrying the USD/TRY rate in
// effect at trade time.
func (t Transaction) WithRate(usdTryRate float64) Transaction {
	t.UsdTryRate = usdTryRate
	return t
}

// WithCommission returns a copy of the transaction carrying a commission rate.
func (t Transaction) WithCommission(rate float64) Transaction {
	t.CommissionRate = rate
	return t
}

// Validate checks the transaction for shape errors. The valuation engine
// assumes its input already passed this check and does not re-validate.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Ticker) == "" {
		return fmt.Errorf("transaction ticker is missing")
	}
	if t.Type != Buy && t.Type != Sell {
		return fmt.Errorf("unknown transaction type: %q", t.Type)
	}
	if t.Quantity <= 0 || math.IsNaN(t.Quantity) || math.IsInf(t.Quantity, 0) {
		return fmt.Errorf("transaction quantity must be a positive number, got %v", t.Quantity)
	}
	if t.Price < 0 || math.IsNaN(t.Price) || math.IsInf(t.Price, 0) {
		return fmt.Errorf("transaction price must be a non-negative number, got %v", t.Price)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is missing")
	}
	if t.UsdTryRate < 0 || math.IsNaN(t.UsdTryRate) || math.IsInf(t.UsdTryRate, 0) {
		return fmt.Errorf("transaction USD/TRY rate must be positive when set, got %v", t.UsdTryRate)
	}
	if t.CommissionRate < 0 || t.CommissionRate >= 1 || math.IsNaN(t.CommissionRate) {
		return fmt.Errorf("transaction commission rate must be in [0,1), got %v", t.CommissionRate)
	}
	return nil
}

// Equal reports whether two transactions are identical, field by field.
func (t Transaction) Equal(o Transaction) bool { return t == o }
