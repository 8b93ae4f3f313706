package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venda is one completed sale. The four derived money fields are computed by
// the pricing calculator at write time and persisted — the monthly closing
// reconciler aggregates ValorTotal without re-deriving it.
type Venda struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null"`
	CanalVendaID uuid.UUID `gorm:"type:uuid;index;not null"`
	Frete        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// FreteTaxavel: when true the channel fee is charged over subtotal+frete.
	FreteTaxavel     bool            `gorm:"not null;default:false"`
	SubtotalProdutos decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxaCanal        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ValorTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	LucroTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt        time.Time       `gorm:"index"`
	UpdatedAt        time.Time

	Canal *CanalVenda `gorm:"foreignKey:CanalVendaID"`
	Itens []ItemVenda `gorm:"foreignKey:VendaID"`
}

// ItemVenda is one cart line. ProdutoNome and ValorUnitario are snapshots
// taken at sale time: deleting the product later nulls the reference but
// keeps the historical line intact.
type ItemVenda struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendaID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProdutoID     *uuid.UUID      `gorm:"type:uuid;index"`
	ProdutoNome   string          `gorm:"not null"`
	Quantidade    int             `gorm:"not null"`
	ValorUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CustoUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time
}

func (ItemVenda) TableName() string { return "itens_venda" }
