package services

import (
	"sync"

	"github.com/shopspring/decimal"

	apperrors "stockbook/internal/errors"
	"stockbook/internal/ledger"
	"stockbook/internal/logger"
	"stockbook/internal/models"
	"stockbook/internal/pagination"
)

// ledgerService orchestrates ledger mutations. Each mutation validates the
// candidate against the current ledger, re-derives every event whose
// predecessor chain changed, and hands the full changed set to the store for
// one atomic commit.
//
// The mutex serializes mutations: two cascades over overlapping date ranges
// must not interleave, or a commit could be derived from a predecessor state
// that another commit has already replaced. Reads don't take the lock; the
// store's atomic commit guarantees they see the ledger before or after a
// mutation, never in between.
type ledgerService struct {
	store LedgerStore
	mu    sync.Mutex
}

// NewLedgerService creates a new LedgerServicer backed by the given store.
func NewLedgerService(store LedgerStore) LedgerServicer {
	return &ledgerService{store: store}
}

func validateEventInput(input EventInput) error {
	switch input.Kind {
	case models.EventKindPurchase, models.EventKindSale:
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be PURCHASE or SALE")
	}
	if input.Quantity <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be greater than zero")
	}
	if input.UnitPrice.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unit price must not be negative")
	}
	if input.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	return nil
}

// RecordEvent admits a new purchase or sale, derives its valuation from its
// predecessor, re-derives all later events and commits everything atomically.
func (s *ledgerService) RecordEvent(input EventInput) (*models.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}
	date := models.NormalizeDate(input.Date)
	raw := ledger.RawEvent{Kind: input.Kind, Quantity: input.Quantity, UnitPrice: input.UnitPrice}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Admission checks run before any derivation.
	occupant, err := s.store.ByDate(date)
	if err != nil {
		return nil, err
	}
	if err := ledger.CheckDateFree(occupant, ""); err != nil {
		return nil, err
	}

	prev, err := s.store.LatestBefore(date, "")
	if err != nil {
		return nil, err
	}
	if err := ledger.CheckStock(prev, raw); err != nil {
		return nil, err
	}

	candidate := models.Event{
		Kind:      input.Kind,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
		Date:      date,
	}

	successors, err := s.store.AllAfter(date, "")
	if err != nil {
		return nil, err
	}

	chain := ledger.Recalculate(prev, ledger.MergeByDate(candidate, successors))
	upserts := roundForCommit(chain)

	if err := s.store.CommitBatch(upserts, nil); err != nil {
		return nil, err
	}

	created := eventOnDate(upserts, candidate)
	logger.Get().Infow("ledger event recorded",
		"id", created.ID,
		"kind", created.Kind,
		"date", created.Date.Format("2006-01-02"),
		"recalculated", len(upserts)-1,
	)
	return created, nil
}

// UpdateEvent replaces an event's raw fields, keeping its identity, and
// re-derives everything downstream. When the date itself moves, the cascade
// restarts at the earlier of the old and new positions so events the update
// moved past are re-derived too.
func (s *ledgerService) UpdateEvent(id string, input EventInput) (*models.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}
	date := models.NormalizeDate(input.Date)
	raw := ledger.RawEvent{Kind: input.Kind, Quantity: input.Quantity, UnitPrice: input.UnitPrice}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.store.ByID(id)
	if err != nil {
		return nil, err
	}

	occupant, err := s.store.ByDate(date)
	if err != nil {
		return nil, err
	}
	if err := ledger.CheckDateFree(occupant, id); err != nil {
		return nil, err
	}

	prev, err := s.store.LatestBefore(date, id)
	if err != nil {
		return nil, err
	}
	if err := ledger.CheckStock(prev, raw); err != nil {
		return nil, err
	}

	// The fold restarts at the earlier of the two positions.
	start := existing.Date
	base := prev
	if date.Before(start) {
		start = date
	} else if start.Before(date) {
		base, err = s.store.LatestBefore(start, id)
		if err != nil {
			return nil, err
		}
	}

	successors, err := s.store.AllAfter(start, id)
	if err != nil {
		return nil, err
	}

	candidate := *existing
	candidate.Kind = input.Kind
	candidate.Quantity = input.Quantity
	candidate.UnitPrice = input.UnitPrice
	candidate.Date = date

	chain := ledger.Recalculate(base, ledger.MergeByDate(candidate, successors))
	upserts := roundForCommit(chain)

	if err := s.store.CommitBatch(upserts, nil); err != nil {
		return nil, err
	}

	updated := eventByID(upserts, id)
	logger.Get().Infow("ledger event updated",
		"id", id,
		"date", updated.Date.Format("2006-01-02"),
		"recalculated", len(upserts)-1,
	)
	return updated, nil
}

// DeleteEvent removes an event and re-derives all later events against the
// deleted event's predecessor, leaving the ledger as if the event had never
// been recorded. Delete and rewrite land in the same atomic commit.
func (s *ledgerService) DeleteEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.store.ByID(id)
	if err != nil {
		return err
	}

	prev, err := s.store.LatestBefore(existing.Date, id)
	if err != nil {
		return err
	}

	successors, err := s.store.AllAfter(existing.Date, id)
	if err != nil {
		return err
	}

	chain := ledger.Recalculate(prev, successors)
	upserts := roundForCommit(chain)

	if err := s.store.CommitBatch(upserts, []string{id}); err != nil {
		return err
	}

	logger.Get().Infow("ledger event deleted",
		"id", id,
		"date", existing.Date.Format("2006-01-02"),
		"recalculated", len(upserts),
	)
	return nil
}

// GetEventByID returns a single ledger event.
func (s *ledgerService) GetEventByID(id string) (*models.Event, error) {
	return s.store.ByID(id)
}

// ListEvents returns a paginated list of events, newest first.
func (s *ledgerService) ListEvents(page pagination.PageRequest, filter EventFilter) (*pagination.PageResponse[models.Event], error) {
	return s.store.List(page, filter)
}

// Summary reports the book's current valuation, carried by the latest event.
func (s *ledgerService) Summary() (*InventorySummary, error) {
	latest, err := s.store.Latest()
	if err != nil {
		return nil, err
	}

	if latest == nil {
		return &InventorySummary{
			WAC:            decimal.Zero,
			InventoryValue: decimal.Zero,
		}, nil
	}

	value := ledger.RoundMoney(latest.WAC.Mul(decimal.NewFromInt(latest.TotalQuantity)))
	asOf := latest.Date
	return &InventorySummary{
		WAC:            latest.WAC,
		TotalQuantity:  latest.TotalQuantity,
		InventoryValue: value,
		AsOf:           &asOf,
	}, nil
}

// roundForCommit copies a recomputed chain and rounds its monetary fields.
// This is the single point where rounding happens: the fold itself carries
// full precision from one event to the next.
func roundForCommit(chain []models.Event) []models.Event {
	out := make([]models.Event, len(chain))
	for i, ev := range chain {
		ev.UnitPrice = ledger.RoundMoney(ev.UnitPrice)
		ev.WAC = ledger.RoundMoney(ev.WAC)
		out[i] = ev
	}
	return out
}

func eventByID(events []models.Event, id string) *models.Event {
	for i := range events {
		if events[i].ID == id {
			return &events[i]
		}
	}
	return nil
}

// eventOnDate finds the freshly inserted candidate in the committed batch by
// its unique date (its ID is generated during the commit).
func eventOnDate(events []models.Event, candidate models.Event) *models.Event {
	for i := range events {
		if events[i].Date.Equal(candidate.Date) {
			return &events[i]
		}
	}
	return nil
}
