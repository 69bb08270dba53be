// Package ledger implements the valuation core of the inventory book: the
// weighted-average-cost rule, the admission guard, and the cascade fold that
// re-derives every later event after a mutation.
//
// Everything in this package is pure computation over in-memory events. It
// performs no I/O and holds no state, so the ordering and rounding behaviour
// can be tested in isolation from storage.
package ledger

import (
	"github.com/shopspring/decimal"

	"stockbook/internal/models"
)

// MoneyPlaces is the decimal precision monetary values are rounded to at the
// persistence boundary. Intermediate cascade results stay unrounded so that
// rounding error cannot compound across a long chain of recomputations.
const MoneyPlaces = 2

// RawEvent holds the caller-supplied fields of an event, before derivation.
type RawEvent struct {
	Kind      models.EventKind
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Derived holds the valuation computed for an event from its predecessor.
type Derived struct {
	WAC           decimal.Decimal
	TotalQuantity int64
}

// Derive computes an event's weighted average cost and resulting inventory
// quantity from the predecessor state. prev is nil for the earliest event.
//
//	no predecessor: wac = unitPrice, total = quantity
//	SALE:           wac unchanged, total = prev.total - quantity
//	PURCHASE:       wac = (prev.total*prev.wac + quantity*unitPrice) / (prev.total + quantity)
//
// The returned WAC is not rounded; see RoundMoney.
func Derive(prev *models.Event, raw RawEvent) Derived {
	if prev == nil {
		return Derived{WAC: raw.UnitPrice, TotalQuantity: raw.Quantity}
	}

	if raw.Kind == models.EventKindSale {
		// Sales never move the average cost.
		return Derived{WAC: prev.WAC, TotalQuantity: prev.TotalQuantity - raw.Quantity}
	}

	inventoryValue := decimal.NewFromInt(prev.TotalQuantity).Mul(prev.WAC)
	newValue := inventoryValue.Add(decimal.NewFromInt(raw.Quantity).Mul(raw.UnitPrice))
	newQuantity := prev.TotalQuantity + raw.Quantity

	return Derived{
		WAC:           newValue.Div(decimal.NewFromInt(newQuantity)),
		TotalQuantity: newQuantity,
	}
}

// RoundMoney rounds a monetary value to MoneyPlaces decimal places. Called
// exactly once per value, when a commit batch is built.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}
