package service

import (
	"context"
	"errors"

	"acaimanager/internal/dto"
	"acaimanager/internal/model"
	"acaimanager/internal/repository"

	"github.com/google/uuid"
)

type CanalService interface {
	Criar(ctx context.Context, userID uuid.UUID, req dto.SalvarCanalRequest) (*dto.CanalResponse, error)
	Atualizar(ctx context.Context, userID, id uuid.UUID, req dto.SalvarCanalRequest) (*dto.CanalResponse, error)
	Excluir(ctx context.Context, userID, id uuid.UUID) error
	Listar(ctx context.Context, userID uuid.UUID) ([]dto.CanalResponse, error)
}

type canalService struct {
	repo repository.CanalRepository
}

func NewCanalService(repo repository.CanalRepository) CanalService {
	return &canalService{repo: repo}
}

func (s *canalService) Criar(ctx context.Context, userID uuid.UUID, req dto.SalvarCanalRequest) (*dto.CanalResponse, error) {
	if !model.IconeValido(req.Icone) {
		return nil, errors.New("ícone de canal inválido")
	}

	c := model.CanalVenda{
		UserID: userID,
		Nome:   req.Nome,
		Taxa:   req.Taxa,
		Icone:  req.Icone,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return canalToResponse(&c), nil
}

// Atualizar changes name, fee and icon. Recorded sales keep the fee they were
// priced with; only future sales see the new percentage.
func (s *canalService) Atualizar(ctx context.Context, userID, id uuid.UUID, req dto.SalvarCanalRequest) (*dto.CanalResponse, error) {
	if !model.IconeValido(req.Icone) {
		return nil, errors.New("ícone de canal inválido")
	}

	c, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, errors.New("canal de venda não encontrado")
	}

	c.Nome = req.Nome
	c.Taxa = req.Taxa
	c.Icone = req.Icone

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return canalToResponse(c), nil
}

// Excluir refuses to delete a channel that already has sales.
func (s *canalService) Excluir(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, userID, id); err != nil {
		return errors.New("canal de venda não encontrado")
	}

	vendas, err := s.repo.CountVendas(ctx, userID, id)
	if err != nil {
		return err
	}
	if vendas > 0 {
		return errors.New("canal com vendas registradas não pode ser excluído")
	}

	return s.repo.Delete(ctx, userID, id)
}

func (s *canalService) Listar(ctx context.Context, userID uuid.UUID) ([]dto.CanalResponse, error) {
	canais, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CanalResponse, 0, len(canais))
	for i := range canais {
		resp = append(resp, *canalToResponse(&canais[i]))
	}
	return resp, nil
}

func canalToResponse(c *model.CanalVenda) *dto.CanalResponse {
	return &dto.CanalResponse{
		ID:    c.ID.String(),
		Nome:  c.Nome,
		Taxa:  c.Taxa,
		Icone: c.Icone,
	}
}
