package dto

import "github.com/shopspring/decimal"

type ItemCustoRequest struct {
	// ID is present when editing: items that come back keep their row, items
	// left out are deleted, items without ID are inserted.
	ID           *string         `json:"id"            validate:"omitempty,uuid"`
	Nome         string          `json:"nome"          validate:"required,min=2"`
	FornecedorID *string         `json:"fornecedor_id" validate:"omitempty,uuid"`
	ValorPago    decimal.Decimal `json:"valor_pago"    validate:"required"`
	Rendimento   int             `json:"rendimento"    validate:"required,gt=0"`
}

type SalvarComposicaoRequest struct {
	Nome      string             `json:"nome"       validate:"required,min=2"`
	ImagemURL *string            `json:"imagem_url" validate:"omitempty,url"`
	Itens     []ItemCustoRequest `json:"itens"      validate:"dive"`
}

type ItemCustoResponse struct {
	ID             string          `json:"id"`
	Nome           string          `json:"nome"`
	FornecedorID   *string         `json:"fornecedor_id"`
	FornecedorNome string          `json:"fornecedor_nome"`
	ValorPago      decimal.Decimal `json:"valor_pago"`
	Rendimento     int             `json:"rendimento"`
	CustoUnitario  decimal.Decimal `json:"custo_unitario"`
}

type ComposicaoResponse struct {
	ID         string              `json:"id"`
	Nome       string              `json:"nome"`
	ImagemURL  *string             `json:"imagem_url"`
	CustoTotal decimal.Decimal     `json:"custo_total"`
	Itens      []ItemCustoResponse `json:"itens"`
}
