package models

import (
	"time"

	"gorm.io/gorm"
)

// JobSite is a delivery destination profile distinct from a billing address.
type JobSite struct {
	ID                   uint           `json:"id" gorm:"primaryKey"`
	Name                 string         `json:"name" gorm:"not null"`
	AddressLine1         string         `json:"address_line_1" gorm:"not null"`
	AddressLine2         string         `json:"address_line_2"`
	City                 string         `json:"city"`
	Region               string         `json:"region"`
	ContactName          string         `json:"contact_name"`
	ContactPhone         string         `json:"contact_phone"`
	DeliveryInstructions string         `json:"delivery_instructions" gorm:"type:text"`
	CreatedBy            *uint          `json:"created_by"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
