package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Despesa status values.
const (
	DespesaPendente = "pendente"
	DespesaPaga     = "paga"
)

// System expense types synthesized from sales. Created on demand per user.
const (
	TipoDespesaCustoProdutos = "Custo de Produtos Vendidos"
	TipoDespesaTaxaCanal     = "Taxa de Canal"
)

// TipoDespesa is a user-defined expense category with an emoji label.
type TipoDespesa struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Nome      string    `gorm:"not null"`
	Emoji     string    `gorm:"not null"`
	CreatedAt time.Time
}

func (TipoDespesa) TableName() string { return "tipos_despesa" }

// Despesa is a single expense entry.
//
// Two flavors share this table:
//   - Recorrente=true rows are templates: DataVencimentoDia (1-31) marks the
//     due day; the generator materializes one dated instance per month.
//   - Recorrente=false rows are concrete instances — either user-entered,
//     generated from a template (ModeloID set), or synthesized from a sale
//     (VendaID set: cost-of-goods / channel-fee side effects).
type Despesa struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID            uuid.UUID       `gorm:"type:uuid;index;not null"`
	Descricao         string          `gorm:"not null"`
	Valor             decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TipoDespesaID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Data              time.Time       `gorm:"type:date;index;not null"`
	Status            string          `gorm:"type:varchar(20);not null;default:'pendente'"`
	Recorrente        bool            `gorm:"not null;default:false"`
	DataVencimentoDia *int
	VendaID           *uuid.UUID `gorm:"type:uuid;index"`
	ModeloID          *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Tipo *TipoDespesa `gorm:"foreignKey:TipoDespesaID"`
}
