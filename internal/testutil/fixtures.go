package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stockbook/internal/models"
)

// Day parses a "2006-01-02" calendar date. Fixture dates are always UTC
// midnight, matching how the ledger normalizes them.
func Day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("invalid fixture date %q: %v", s, err)
	}
	return d
}

// Money parses a decimal fixture value.
func Money(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid fixture amount %q: %v", s, err)
	}
	return d
}

// CreateTestEvent inserts a fully-derived ledger row directly, bypassing the
// recalculation cascade. Only for store-level tests; service tests should
// build ledgers through the service so the derived fields stay consistent.
func CreateTestEvent(t *testing.T, db *gorm.DB, kind models.EventKind, qty int64, price, date, wac string, total int64) *models.Event {
	t.Helper()

	event := &models.Event{
		Kind:          kind,
		Quantity:      qty,
		UnitPrice:     Money(t, price),
		Date:          Day(t, date),
		WAC:           Money(t, wac),
		TotalQuantity: total,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create test event: %v", err)
	}
	return event
}
