package models

import (
	"time"

	"stockbook/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables.
//
// Ledger rows are deleted for real, never soft-deleted: a soft-deleted row
// would still occupy its calendar date in the unique index and block a new
// event on that day.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
