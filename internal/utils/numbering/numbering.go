package numbering

import (
	"fmt"
	"time"
)

// Transaction numbers are human-readable identifiers built from a 3-letter
// type prefix, the posting date, and a 4-digit daily sequence. The sequence
// itself is allocated atomically by the storage layer; this package only
// formats it.

const dateLayout = "20060102"

// Compact formats a number without separators, e.g. TRX202609010001.
// Used for ledger and treasury transaction numbers.
func Compact(prefix string, date time.Time, seq int64) string {
	return fmt.Sprintf("%s%s%04d", prefix, date.Format(dateLayout), seq)
}

// Dashed formats a dash-delimited number, e.g. DPT-20260901-0001.
// Used for deposit and member numbers.
func Dashed(prefix string, date time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, date.Format(dateLayout), seq)
}
