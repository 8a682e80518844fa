package bistfolio

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Ledger is the record of all buy and sell transactions.
//
// In a Ledger transactions are always in chronological order; transactions
// sharing a date keep their insertion order, which is the tie-break the FIFO
// lot matching relies on.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append validates and adds transactions to the ledger, keeping it sorted.
// Transactions without an ID are assigned one. It returns the first
// validation error encountered; valid transactions before it are kept.
func (l *Ledger) Append(txs ...Transaction) error {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("invalid %s transaction on %s: %w", strings.ToLower(string(tx.Type)), tx.Date, err)
		}
		if tx.ID == "" {
			tx.ID = uuid.NewString()
		}
		l.transactions = append(l.transactions, tx)
	}
	l.sort()
	return nil
}

// sort restores chronological order. The sort is stable: same-day
// transactions keep their relative append order.
func (l *Ledger) sort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the ledger's transactions in chronological order.
func (l *Ledger) Transactions() []Transaction {
	return slices.Clone(l.transactions)
}

// Get returns the transaction with the given ID.
func (l *Ledger) Get(id string) (Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Delete removes the transaction with the given ID. It reports whether a
// transaction was removed.
func (l *Ledger) Delete(id string) bool {
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = slices.Delete(l.transactions, i, i+1)
			return true
		}
	}
	return false
}

// AllTickers iterates over the distinct tickers in the ledger, in order of
// first appearance.
func (l *Ledger) AllTickers() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]bool)
		for _, tx := range l.transactions {
			if seen[tx.Ticker] {
				continue
			}
			seen[tx.Ticker] = true
			if !yield(tx.Ticker) {
				return
			}
		}
	}
}
