package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario is the merchant account. Every domain row carries a UserID column
// scoped to one of these — there is no cross-merchant visibility.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Nome         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Ativo        bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
