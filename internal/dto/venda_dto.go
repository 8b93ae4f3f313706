package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// VendaFilter is bound from the query string of GET /v1/vendas.
type VendaFilter struct {
	Mes     int    `form:"mes"   validate:"omitempty,min=1,max=12"`
	Ano     int    `form:"ano"   validate:"omitempty,min=2000"`
	CanalID string `form:"canal" validate:"omitempty,uuid"`
	Page    int    `form:"page,default=1"   validate:"min=1"`
	Limit   int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type VendaListResponse struct {
	Data  []VendaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVendaRequest struct {
	ProdutoID  string `json:"produto_id" validate:"required,uuid"`
	Quantidade int    `json:"quantidade" validate:"required,min=1"`
}

type SalvarVendaRequest struct {
	CanalVendaID string             `json:"canal_venda_id" validate:"required,uuid"`
	Frete        decimal.Decimal    `json:"frete"          validate:"min=0"`
	FreteTaxavel bool               `json:"frete_taxavel"`
	Itens        []ItemVendaRequest `json:"itens"          validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVendaResponse struct {
	Produto       string          `json:"produto"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type VendaResponse struct {
	ID               string              `json:"id"`
	CanalVendaID     string              `json:"canal_venda_id"`
	CanalNome        string              `json:"canal_nome"`
	Frete            decimal.Decimal     `json:"frete"`
	FreteTaxavel     bool                `json:"frete_taxavel"`
	SubtotalProdutos decimal.Decimal     `json:"subtotal_produtos"`
	TaxaCanal        decimal.Decimal     `json:"taxa_canal"`
	ValorTotal       decimal.Decimal     `json:"valor_total"`
	LucroTotal       decimal.Decimal     `json:"lucro_total"`
	Itens            []ItemVendaResponse `json:"itens"`
	CreatedAt        string              `json:"created_at"`
}
