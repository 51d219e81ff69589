package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusUpdate is an append-only audit record of an order's lifecycle.
// Rows are only ever created, never edited or removed.
type OrderStatusUpdate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	Status    string    `json:"status" gorm:"not null"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedBy *uint     `json:"created_by"` // nullable if the acting account is later removed
	CreatedAt time.Time `json:"created_at"`
}
