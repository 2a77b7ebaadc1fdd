package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ExternalID     string    `gorm:"type:varchar(64);unique;not null"`
	Username       string    `gorm:"type:varchar(100);unique;not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:PENDING"`
	Locked         bool      `gorm:"not null;default:false"`
	LoginAttempt   int       `gorm:"not null;default:0"`
	AutoUnlockedAt *time.Time
	TimezoneOffset int       `gorm:"not null;default:0"`
	RoleID         uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Role  *RoleModel  `gorm:"foreignKey:RoleID"`
	Admin *AdminModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// AdminModel mirrors the 'admins' table. AccountID references accounts.id (UUID).
type AdminModel struct {
	AccountID   uuid.UUID `gorm:"primaryKey"`
	ExternalID  string    `gorm:"type:varchar(64);unique;not null"`
	DisplayName string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
