// Package bistfolio provides the accounting core of a personal equity
// portfolio tracker for Borsa Istanbul, kept in TRY with USD as a secondary
// reporting currency.
//
// The core functionalities include:
//   - Ledger Management: recording buy and sell transactions in an
//     immutable, chronological record.
//   - Price Table: per-ticker price histories, kept sorted on ingestion and
//     used to resolve the latest known price of a holding.
//   - Valuation Engine: a stateless calculator that replays the ledger,
//     matches sells against buy lots FIFO, and produces current holdings
//     with unrealized gains and a realized gain/loss history, both in TRY
//     and, where exchange information allows, in USD.
//   - Data Persistence: encoding and decoding of all data to human-readable,
//     version-controllable files (JSONL), plus CSV and JSON backup
//     import/export.
//
// This package serves as the foundational logic for the `bist` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package bistfolio
