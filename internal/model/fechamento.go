package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FechamentoMensal is the closed revenue aggregate of one elapsed month.
// Exactly one row per (user, mes, ano) once the backfill has run; the current
// month is computed live and never persisted until it elapses.
type FechamentoMensal struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID          uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_fechamento_user_mes_ano;not null"`
	Mes             int             `gorm:"uniqueIndex:idx_fechamento_user_mes_ano;not null"`
	Ano             int             `gorm:"uniqueIndex:idx_fechamento_user_mes_ano;not null"`
	Faturamento     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TransferenciaPF decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (FechamentoMensal) TableName() string { return "fechamentos_mensais" }

// MEI status labels for the annual revenue position.
const (
	MeiRegular = "Regular"
	MeiAtencao = "Atenção"
	MeiAlerta  = "Alerta"
)

// Warning bands are fixed in absolute terms; the configured ceiling only
// drives the percentage gauge.
var (
	meiFaixaAtencao = decimal.NewFromInt(60000)
	meiFaixaAlerta  = decimal.NewFromInt(70000)
)

// ClassificarMei returns the status label and the percentage of the annual
// ceiling already consumed by faturamentoAnual.
func ClassificarMei(faturamentoAnual, limite decimal.Decimal) (string, decimal.Decimal) {
	percentual := decimal.Zero
	if limite.IsPositive() {
		percentual = faturamentoAnual.Div(limite).Mul(decimal.NewFromInt(100)).Round(2)
	}
	switch {
	case faturamentoAnual.GreaterThanOrEqual(meiFaixaAlerta):
		return MeiAlerta, percentual
	case faturamentoAnual.GreaterThanOrEqual(meiFaixaAtencao):
		return MeiAtencao, percentual
	default:
		return MeiRegular, percentual
	}
}
