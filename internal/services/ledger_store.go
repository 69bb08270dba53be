package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "stockbook/internal/errors"
	"stockbook/internal/models"
	"stockbook/internal/pagination"
)

// gormLedgerStore implements LedgerStore on a GORM connection. The events
// table is the only owner of ledger state; all multi-row writes go through
// CommitBatch so a cascade is never partially visible.
type gormLedgerStore struct {
	db *gorm.DB
}

// NewLedgerStore creates a GORM-backed LedgerStore.
func NewLedgerStore(db *gorm.DB) LedgerStore {
	return &gormLedgerStore{db: db}
}

func (s *gormLedgerStore) ByID(id string) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &event, nil
}

func (s *gormLedgerStore) ByDate(date time.Time) (*models.Event, error) {
	return s.firstOrNil(s.db.Where("date = ?", date))
}

func (s *gormLedgerStore) LatestBefore(date time.Time, excludeID string) (*models.Event, error) {
	q := s.db.Where("date < ?", date).Order("date DESC")
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	return s.firstOrNil(q)
}

func (s *gormLedgerStore) AllAfter(date time.Time, excludeID string) ([]models.Event, error) {
	q := s.db.Where("date > ?", date).Order("date ASC")
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var events []models.Event
	if err := q.Find(&events).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return events, nil
}

func (s *gormLedgerStore) Latest() (*models.Event, error) {
	return s.firstOrNil(s.db.Order("date DESC"))
}

func (s *gormLedgerStore) List(page pagination.PageRequest, filter EventFilter) (*pagination.PageResponse[models.Event], error) {
	page.Defaults()

	base := s.db.Model(&models.Event{})
	if filter.Kind != nil {
		base = base.Where("kind = ?", *filter.Kind)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var events []models.Event
	if err := base.Order("date DESC").
		Scopes(pagination.Paginate(page)).
		Find(&events).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(events, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// CommitBatch applies deletes and upserts inside one database transaction.
// Upserts use an ON CONFLICT (id) DO UPDATE clause, so recomputed successors
// overwrite their rows while a new event inserts fresh. Failures surface as
// ErrPersistence and leave every row untouched.
func (s *gormLedgerStore) CommitBatch(upserts []models.Event, deleteIDs []string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(deleteIDs) > 0 {
			if err := tx.Delete(&models.Event{}, "id IN ?", deleteIDs).Error; err != nil {
				return err
			}
		}

		if len(upserts) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"kind", "quantity", "unit_price", "date", "wac", "total_quantity", "updated_at",
				}),
			}).Create(&upserts).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return nil
}

func (s *gormLedgerStore) firstOrNil(q *gorm.DB) (*models.Event, error) {
	var event models.Event
	if err := q.First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &event, nil
}
