package dto

import "github.com/shopspring/decimal"

type SalvarCanalRequest struct {
	Nome  string          `json:"nome"  validate:"required,min=2"`
	Taxa  decimal.Decimal `json:"taxa"  validate:"min=0"`
	Icone string          `json:"icone" validate:"required,oneof=instagram truck phone store"`
}

type CanalResponse struct {
	ID    string          `json:"id"`
	Nome  string          `json:"nome"`
	Taxa  decimal.Decimal `json:"taxa"`
	Icone string          `json:"icone"`
}
