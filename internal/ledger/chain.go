package ledger

import (
	"sort"

	"stockbook/internal/models"
)

// Recalculate re-derives the WAC and total quantity of every event in seq,
// folding Derive over the sequence with prev as the initial predecessor.
// seq must be in ascending date order; each re-derived event becomes the
// predecessor of the next. prev is nil when the sequence starts the ledger.
//
// The input slice is not modified. Derived values in the result are left
// unrounded; callers round when building the commit batch.
func Recalculate(prev *models.Event, seq []models.Event) []models.Event {
	out := make([]models.Event, 0, len(seq))
	running := prev

	for _, ev := range seq {
		d := Derive(running, RawEvent{
			Kind:      ev.Kind,
			Quantity:  ev.Quantity,
			UnitPrice: ev.UnitPrice,
		})
		ev.WAC = d.WAC
		ev.TotalQuantity = d.TotalQuantity

		out = append(out, ev)
		running = &out[len(out)-1]
	}

	return out
}

// MergeByDate inserts ev into seq at its date position and returns the merged
// sequence in ascending date order. Used when an updated event moves between
// its old and new successors.
func MergeByDate(ev models.Event, seq []models.Event) []models.Event {
	merged := make([]models.Event, 0, len(seq)+1)
	merged = append(merged, seq...)
	merged = append(merged, ev)

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})
	return merged
}
