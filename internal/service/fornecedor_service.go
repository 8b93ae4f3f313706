package service

import (
	"context"
	"errors"

	"acaimanager/internal/dto"
	"acaimanager/internal/model"
	"acaimanager/internal/repository"

	"github.com/google/uuid"
)

type FornecedorService interface {
	Criar(ctx context.Context, userID uuid.UUID, req dto.SalvarFornecedorRequest) (*dto.FornecedorResponse, error)
	Atualizar(ctx context.Context, userID, id uuid.UUID, req dto.SalvarFornecedorRequest) (*dto.FornecedorResponse, error)
	Excluir(ctx context.Context, userID, id uuid.UUID) error
	Listar(ctx context.Context, userID uuid.UUID) ([]dto.FornecedorResponse, error)
}

type fornecedorService struct {
	repo           repository.FornecedorRepository
	composicaoRepo repository.ComposicaoRepository
}

func NewFornecedorService(repo repository.FornecedorRepository, composicaoRepo repository.ComposicaoRepository) FornecedorService {
	return &fornecedorService{repo: repo, composicaoRepo: composicaoRepo}
}

func (s *fornecedorService) Criar(ctx context.Context, userID uuid.UUID, req dto.SalvarFornecedorRequest) (*dto.FornecedorResponse, error) {
	f := model.Fornecedor{
		UserID:   userID,
		Nome:     req.Nome,
		Telefone: req.Telefone,
		Email:    req.Email,
	}
	if err := s.repo.Create(ctx, &f); err != nil {
		return nil, err
	}
	return fornecedorToResponse(&f), nil
}

func (s *fornecedorService) Atualizar(ctx context.Context, userID, id uuid.UUID, req dto.SalvarFornecedorRequest) (*dto.FornecedorResponse, error) {
	f, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, errors.New("fornecedor não encontrado")
	}

	f.Nome = req.Nome
	f.Telefone = req.Telefone
	f.Email = req.Email

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return fornecedorToResponse(f), nil
}

// Excluir refuses to delete a supplier still referenced by recipe cost items.
func (s *fornecedorService) Excluir(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, userID, id); err != nil {
		return errors.New("fornecedor não encontrado")
	}

	referencias, err := s.composicaoRepo.CountItensByFornecedor(ctx, userID, id)
	if err != nil {
		return err
	}
	if referencias > 0 {
		return errors.New("fornecedor em uso por itens de custo e não pode ser excluído")
	}

	return s.repo.Delete(ctx, userID, id)
}

func (s *fornecedorService) Listar(ctx context.Context, userID uuid.UUID) ([]dto.FornecedorResponse, error) {
	fornecedores, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.FornecedorResponse, 0, len(fornecedores))
	for i := range fornecedores {
		resp = append(resp, *fornecedorToResponse(&fornecedores[i]))
	}
	return resp, nil
}

func fornecedorToResponse(f *model.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:       f.ID.String(),
		Nome:     f.Nome,
		Telefone: f.Telefone,
		Email:    f.Email,
	}
}
