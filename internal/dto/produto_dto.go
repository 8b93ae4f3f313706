package dto

import "github.com/shopspring/decimal"

type SalvarProdutoRequest struct {
	Nome          string          `json:"nome"           validate:"required,min=2"`
	CustoUnitario decimal.Decimal `json:"custo_unitario" validate:"min=0"`
	ValorVenda    decimal.Decimal `json:"valor_venda"    validate:"required,gt=0"`
}

type ProdutoResponse struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
	ValorVenda    decimal.Decimal `json:"valor_venda"`
	Lucro         decimal.Decimal `json:"lucro"`
	MargemLucro   decimal.Decimal `json:"margem_lucro"`
}
