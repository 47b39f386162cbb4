package domain

import "github.com/shopspring/decimal"

// LedgerSummary is one row of the read-side aggregate report: totals of all
// ledger entries for a category and direction within a date range.
type LedgerSummary struct {
	Category     EntryCategory   `json:"category"`
	Direction    EntryDirection  `json:"direction"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
	TotalPoints  int64           `json:"totalPoints"`
	EntryCount   int64           `json:"entryCount"`
}
