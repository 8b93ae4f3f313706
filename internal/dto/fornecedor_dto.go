package dto

type SalvarFornecedorRequest struct {
	Nome     string  `json:"nome"     validate:"required,min=2"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

type FornecedorResponse struct {
	ID       string  `json:"id"`
	Nome     string  `json:"nome"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
}
