package service

import (
	"context"
	"errors"

	"acaimanager/internal/dto"
	"acaimanager/internal/model"
	"acaimanager/internal/repository"

	"github.com/google/uuid"
)

type ProdutoService interface {
	Criar(ctx context.Context, userID uuid.UUID, req dto.SalvarProdutoRequest) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, userID, id uuid.UUID, req dto.SalvarProdutoRequest) (*dto.ProdutoResponse, error)
	Excluir(ctx context.Context, userID, id uuid.UUID) error
	Listar(ctx context.Context, userID uuid.UUID) ([]dto.ProdutoResponse, error)
}

type produtoService struct {
	repo repository.ProdutoRepository
}

func NewProdutoService(repo repository.ProdutoRepository) ProdutoService {
	return &produtoService{repo: repo}
}

func (s *produtoService) Criar(ctx context.Context, userID uuid.UUID, req dto.SalvarProdutoRequest) (*dto.ProdutoResponse, error) {
	p := model.Produto{
		UserID:        userID,
		Nome:          req.Nome,
		CustoUnitario: req.CustoUnitario,
		ValorVenda:    req.ValorVenda,
	}
	p.CalcularDerivados()

	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return produtoToResponse(&p), nil
}

func (s *produtoService) Atualizar(ctx context.Context, userID, id uuid.UUID, req dto.SalvarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, errors.New("produto não encontrado")
	}

	p.Nome = req.Nome
	p.CustoUnitario = req.CustoUnitario
	p.ValorVenda = req.ValorVenda
	p.CalcularDerivados()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

// Excluir removes the catalog row. Historical sale lines keep their name and
// price snapshots; only the product reference is nulled by the schema.
func (s *produtoService) Excluir(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, userID, id); err != nil {
		return errors.New("produto não encontrado")
	}
	return s.repo.Delete(ctx, userID, id)
}

func (s *produtoService) Listar(ctx context.Context, userID uuid.UUID) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		resp = append(resp, *produtoToResponse(&produtos[i]))
	}
	return resp, nil
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:            p.ID.String(),
		Nome:          p.Nome,
		CustoUnitario: p.CustoUnitario,
		ValorVenda:    p.ValorVenda,
		Lucro:         p.Lucro,
		MargemLucro:   p.MargemLucro,
	}
}
