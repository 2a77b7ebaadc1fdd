package model

import (
	"time"

	"github.com/google/uuid"
)

// APIKeyModel mirrors the 'api_keys' table.
type APIKeyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Token     string    `gorm:"type:varchar(512);unique;not null"`
	AccountID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`

	Account *AccountModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (APIKeyModel) TableName() string {
	return "api_keys"
}
