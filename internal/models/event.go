package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventKind represents the kind of ledger event.
type EventKind string

const (
	EventKindPurchase EventKind = "PURCHASE"
	EventKindSale     EventKind = "SALE"
)

// Event is a single entry in the inventory ledger: one purchase or sale on a
// given calendar day, together with the derived valuation as of that day.
//
// Kind, Quantity, UnitPrice and Date are the raw fields supplied by the
// caller. WAC and TotalQuantity are derived from the chain of all earlier
// events and are recomputed whenever anything earlier in the ledger changes.
type Event struct {
	Base
	Kind      EventKind       `gorm:"not null" json:"kind"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	// Date positions the event in the ledger's total order. At most one
	// event may exist per calendar day, hence the unique index.
	Date time.Time `gorm:"type:date;not null;uniqueIndex" json:"date"`

	// Derived fields. WAC is the weighted average cost of inventory
	// immediately after this event; TotalQuantity is the stock on hand.
	WAC           decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"wac"`
	TotalQuantity int64           `gorm:"not null" json:"total_quantity"`
}

// NormalizeDate truncates a timestamp to its calendar day in UTC. All ledger
// dates are stored and compared in this form.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
