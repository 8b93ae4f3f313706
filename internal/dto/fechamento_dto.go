package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarTransferenciaRequest struct {
	Mes   int             `json:"mes"   validate:"required,min=1,max=12"`
	Ano   int             `json:"ano"   validate:"required,min=2000"`
	Valor decimal.Decimal `json:"valor" validate:"required"`
}

type EnviarRelatorioRequest struct {
	Mes   int    `json:"mes"   validate:"required,min=1,max=12"`
	Ano   int    `json:"ano"   validate:"required,min=2000"`
	Email string `json:"email" validate:"required,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type FechamentoResponse struct {
	ID              string          `json:"id"`
	Mes             int             `json:"mes"`
	Ano             int             `json:"ano"`
	Faturamento     decimal.Decimal `json:"faturamento"`
	TransferenciaPF decimal.Decimal `json:"transferencia_pf"`
}

// MesCorrenteResponse carries the live (still open) month, computed on read.
type MesCorrenteResponse struct {
	Mes         int             `json:"mes"`
	Ano         int             `json:"ano"`
	Faturamento decimal.Decimal `json:"faturamento"`
}

type MeiStatusResponse struct {
	FaturamentoAnual decimal.Decimal `json:"faturamento_anual"`
	Limite           decimal.Decimal `json:"limite"`
	Percentual       decimal.Decimal `json:"percentual"`
	Status           string          `json:"status"`
}

// RelatorioFechamento is the flattened dataset handed to the PDF renderer
// and the report mail job.
type RelatorioFechamento struct {
	NomeLoja        string
	Mes             int
	Ano             int
	Faturamento     decimal.Decimal
	TransferenciaPF decimal.Decimal
	TotalVendas     int64
	Lucro           decimal.Decimal
	Despesas        decimal.Decimal
	MeiAnual        decimal.Decimal
	MeiLimite       decimal.Decimal
	MeiStatus       string
}

type ResumoFechamentoResponse struct {
	Fechados    []FechamentoResponse `json:"fechados"`
	MesCorrente MesCorrenteResponse  `json:"mes_corrente"`
	Mei         MeiStatusResponse    `json:"mei"`
}
