package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto is a sellable item with a fixed cost and sale price.
// Lucro and MargemLucro are derived server-side on every write:
//
//	lucro  = valor_venda - custo_unitario
//	margem = lucro / valor_venda * 100   (0 when valor_venda <= 0)
type Produto struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	Nome          string          `gorm:"index;not null"`
	CustoUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ValorVenda    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Lucro         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MargemLucro   decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CalcularDerivados recomputes Lucro and MargemLucro from the current
// cost and price. Margem is zero for a non-positive sale price.
func (p *Produto) CalcularDerivados() {
	p.Lucro = p.ValorVenda.Sub(p.CustoUnitario)
	if p.ValorVenda.IsPositive() {
		p.MargemLucro = p.Lucro.Div(p.ValorVenda).Mul(decimal.NewFromInt(100)).Round(2)
	} else {
		p.MargemLucro = decimal.Zero
	}
}
