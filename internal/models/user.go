package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Username     string         `json:"username" gorm:"unique;not null"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Role         string         `json:"role" gorm:"default:'CUSTOMER'"` // CUSTOMER, PRO_CONTRACTOR, ADMIN
	PhoneNumber  string         `json:"phone_number"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	RoleCustomer      UserRole = "CUSTOMER"
	RoleProContractor UserRole = "PRO_CONTRACTOR"
	RoleAdmin         UserRole = "ADMIN"
)

func ValidRole(role string) bool {
	switch UserRole(role) {
	case RoleCustomer, RoleProContractor, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the user may perform admin-only operations.
func (u *User) IsStaff() bool {
	return u.Role == string(RoleAdmin)
}

func (u *User) IsProContractor() bool {
	return u.Role == string(RoleProContractor)
}
