package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// DespesaFilter is bound from the query string of GET /v1/despesas.
type DespesaFilter struct {
	Mes    int    `form:"mes"    validate:"omitempty,min=1,max=12"`
	Ano    int    `form:"ano"    validate:"omitempty,min=2000"`
	Status string `form:"status" validate:"omitempty,oneof=pendente paga"`
	TipoID string `form:"tipo"   validate:"omitempty,uuid"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type DespesaListResponse struct {
	Data  []DespesaResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SalvarDespesaRequest struct {
	Descricao     string          `json:"descricao"       validate:"required,min=2"`
	Valor         decimal.Decimal `json:"valor"           validate:"required"`
	TipoDespesaID string          `json:"tipo_despesa_id" validate:"required,uuid"`
	Data          string          `json:"data"            validate:"required,datetime=2006-01-02"`
	Status        string          `json:"status"          validate:"required,oneof=pendente paga"`
	// Recorrente + DataVencimentoDia turn this expense into a monthly template.
	Recorrente        bool `json:"recorrente"`
	DataVencimentoDia *int `json:"data_vencimento_dia" validate:"omitempty,min=1,max=31"`
}

type SalvarTipoDespesaRequest struct {
	Nome  string `json:"nome"  validate:"required,min=2"`
	Emoji string `json:"emoji" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TipoDespesaResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Emoji string `json:"emoji"`
}

// GerarRecorrentesResponse reports how many instances the on-demand
// generation created; zero means the month was already materialized.
type GerarRecorrentesResponse struct {
	Geradas int `json:"geradas"`
}

type DespesaResponse struct {
	ID                string               `json:"id"`
	Descricao         string               `json:"descricao"`
	Valor             decimal.Decimal      `json:"valor"`
	Tipo              *TipoDespesaResponse `json:"tipo,omitempty"`
	Data              string               `json:"data"`
	Status            string               `json:"status"`
	Recorrente        bool                 `json:"recorrente"`
	DataVencimentoDia *int                 `json:"data_vencimento_dia,omitempty"`
	VendaID           *string              `json:"venda_id,omitempty"`
	CreatedAt         string               `json:"created_at"`
}
