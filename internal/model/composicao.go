package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Composicao is the ficha técnica (bill of materials) of a finished product.
// CustoTotal = Σ custo_unitario of its items, persisted on every save.
type Composicao struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Nome       string          `gorm:"not null"`
	ImagemURL  *string
	CustoTotal decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Itens []ItemCusto `gorm:"foreignKey:ComposicaoID"`
}

// TableName overrides GORM's default singular → plural logic for Portuguese names.
func (Composicao) TableName() string { return "composicoes" }

// ItemCusto is one ingredient line of a Composicao.
// CustoUnitario = valor_pago / rendimento; rendimento must be > 0 strictly —
// the service layer rejects anything else before this row is built.
type ItemCusto struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ComposicaoID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Nome          string          `gorm:"not null"`
	FornecedorID  *uuid.UUID      `gorm:"type:uuid;index"`
	ValorPago     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Rendimento    int             `gorm:"not null"`
	CustoUnitario decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	CreatedAt     time.Time

	Fornecedor *Fornecedor `gorm:"foreignKey:FornecedorID"`
}

func (ItemCusto) TableName() string { return "itens_custo" }
