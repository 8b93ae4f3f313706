package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConfiguracaoLoja is the per-merchant singleton: store identity and the
// annual MEI revenue ceiling used by the closing dashboard.
type ConfiguracaoLoja struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	NomeLoja  string          `gorm:"not null;default:''"`
	LimiteMei decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	LogoURL   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ConfiguracaoLoja) TableName() string { return "configuracoes_loja" }
