package ledger

import (
	"fmt"

	apperrors "stockbook/internal/errors"
	"stockbook/internal/models"
)

// Admission checks run before any derivation or write. They are pure: the
// orchestrator fetches the relevant ledger rows and passes them in.

// CheckDateFree fails with ErrDuplicateDate when occupant already holds the
// target calendar day, unless the admission is an update of that same event
// (selfID matches the occupant).
func CheckDateFree(occupant *models.Event, selfID string) error {
	if occupant == nil {
		return nil
	}
	if selfID != "" && occupant.ID == selfID {
		return nil
	}
	return apperrors.ErrDuplicateDate
}

// CheckStock fails with ErrInsufficientInventory when a SALE would drive the
// inventory below zero relative to its predecessor. prev is nil when the sale
// would be the earliest event, i.e. sold out of zero inventory. The error
// details carry the exact shortfall for a precise user-facing message.
func CheckStock(prev *models.Event, raw RawEvent) error {
	if raw.Kind != models.EventKindSale {
		return nil
	}

	var available int64
	if prev != nil {
		available = prev.TotalQuantity
	}

	if raw.Quantity <= available {
		return nil
	}

	shortfall := raw.Quantity - available
	return apperrors.WithDetails(
		apperrors.ErrInsufficientInventory,
		fmt.Sprintf("Cannot sell %d units: only %d in stock (short by %d)", raw.Quantity, available, shortfall),
		map[string]any{"requested": raw.Quantity, "available": available, "shortfall": shortfall},
	)
}
