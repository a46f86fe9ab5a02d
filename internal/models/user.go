package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleFarmer         = "farmer"
	RoleWarehouseAdmin = "warehouse_admin"
	RoleAdmin          = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Address      string `gorm:"size:255" json:"address"`
	Role         string `gorm:"size:20;default:'farmer';index" json:"role"`

	AccountActive   bool       `gorm:"default:true" json:"account_active"`
	SuspendedAt     *time.Time `json:"suspended_at"`
	SuspendedReason string     `gorm:"size:255" json:"suspended_reason"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
