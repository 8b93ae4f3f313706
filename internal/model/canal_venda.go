package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Icone values form a closed set — the UI maps each to a fixed pictogram.
const (
	IconeInstagram = "instagram"
	IconeTruck     = "truck"
	IconePhone     = "phone"
	IconeStore     = "store"
)

// IconeValido reports whether s is one of the supported channel icons.
func IconeValido(s string) bool {
	switch s {
	case IconeInstagram, IconeTruck, IconePhone, IconeStore:
		return true
	}
	return false
}

// CanalVenda is a sales outlet (delivery app, phone orders, walk-in…)
// with its own commission percentage. Taxa is a percent value (10 = 10%).
type CanalVenda struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Nome      string          `gorm:"not null"`
	Taxa      decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Icone     string          `gorm:"type:varchar(20);not null;default:'store'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CanalVenda) TableName() string { return "canais_venda" }
