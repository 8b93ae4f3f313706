package dto

import "github.com/shopspring/decimal"

type AtualizarConfiguracaoRequest struct {
	NomeLoja  string          `json:"nome_loja"  validate:"required,min=2"`
	LimiteMei decimal.Decimal `json:"limite_mei" validate:"required"`
}

type ConfiguracaoResponse struct {
	NomeLoja  string          `json:"nome_loja"`
	LimiteMei decimal.Decimal `json:"limite_mei"`
	LogoURL   *string         `json:"logo_url,omitempty"`
}
