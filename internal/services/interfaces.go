package services

import (
	"time"

	"github.com/shopspring/decimal"

	"stockbook/internal/models"
	"stockbook/internal/pagination"
)

// EventInput holds the raw caller-supplied fields of a ledger event. Derived
// fields are always computed by the service, never accepted from callers.
type EventInput struct {
	Kind      models.EventKind
	Quantity  int64
	UnitPrice decimal.Decimal
	Date      time.Time
}

// EventFilter holds optional filter parameters for listing events.
type EventFilter struct {
	Kind *models.EventKind
}

// InventorySummary describes the current state of the book: the valuation
// carried by the latest event, or all zeros for an empty ledger.
type InventorySummary struct {
	WAC            decimal.Decimal `json:"wac"`
	TotalQuantity  int64           `json:"total_quantity"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	AsOf           *time.Time      `json:"as_of,omitempty"`
}

// LedgerServicer defines the contract for ledger business logic. Every
// mutation re-derives all later events and commits the full changed set
// atomically; a failed operation leaves the ledger exactly as it was.
type LedgerServicer interface {
	RecordEvent(input EventInput) (*models.Event, error)
	UpdateEvent(id string, input EventInput) (*models.Event, error)
	DeleteEvent(id string) error
	GetEventByID(id string) (*models.Event, error)
	ListEvents(page pagination.PageRequest, filter EventFilter) (*pagination.PageResponse[models.Event], error)
	Summary() (*InventorySummary, error)
}

// LedgerStore is the persistence capability consumed by the ledger service.
// It is injected, never reached through a global, so tests can run the full
// cascade against an in-memory database.
//
// Lookup methods that can miss return (nil, nil) rather than an error, except
// ByID which returns ErrEventNotFound.
type LedgerStore interface {
	ByID(id string) (*models.Event, error)
	// ByDate returns the event on the given calendar day, if any.
	ByDate(date time.Time) (*models.Event, error)
	// LatestBefore returns the event with the largest date strictly before
	// date, skipping excludeID when non-empty.
	LatestBefore(date time.Time, excludeID string) (*models.Event, error)
	// AllAfter returns every event strictly after date in ascending date
	// order, skipping excludeID when non-empty.
	AllAfter(date time.Time, excludeID string) ([]models.Event, error)
	// Latest returns the event with the largest date, if any.
	Latest() (*models.Event, error)
	List(page pagination.PageRequest, filter EventFilter) (*pagination.PageResponse[models.Event], error)
	// CommitBatch applies all upserts and deletes in a single atomic unit:
	// either every listed write lands or none do. Generated IDs are filled
	// in on the upsert elements.
	CommitBatch(upserts []models.Event, deleteIDs []string) error
}
