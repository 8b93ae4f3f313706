package model

import (
	"time"

	"github.com/google/uuid"
)

// Fornecedor is an ingredient supplier, referenced weakly by ItemCusto.
// Deletion is restricted while cost items still point at it.
type Fornecedor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Nome      string    `gorm:"not null"`
	Telefone  *string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Fornecedor) TableName() string { return "fornecedores" }
