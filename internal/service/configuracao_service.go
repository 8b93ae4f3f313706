package service

import (
	"context"
	"errors"
	"io"

	"acaimanager/internal/dto"
	"acaimanager/internal/model"
	"acaimanager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// limiteMeiPadrao is the annual MEI revenue ceiling seeded for new accounts.
var limiteMeiPadrao = decimal.NewFromInt(81000)

// ArquivoStorage persists uploaded files and returns their public URL.
type ArquivoStorage interface {
	Salvar(userID uuid.UUID, nome string, r io.Reader) (string, error)
}

type ConfiguracaoService interface {
	Obter(ctx context.Context, userID uuid.UUID) (*dto.ConfiguracaoResponse, error)
	Atualizar(ctx context.Context, userID uuid.UUID, req dto.AtualizarConfiguracaoRequest) (*dto.ConfiguracaoResponse, error)
	UploadLogo(ctx context.Context, userID uuid.UUID, nome string, r io.Reader) (*dto.ConfiguracaoResponse, error)
}

type configuracaoService struct {
	repo    repository.ConfiguracaoRepository
	storage ArquivoStorage
}

func NewConfiguracaoService(repo repository.ConfiguracaoRepository, storage ArquivoStorage) ConfiguracaoService {
	return &configuracaoService{repo: repo, storage: storage}
}

// Obter lazily creates the per-merchant settings row on first access.
func (s *configuracaoService) Obter(ctx context.Context, userID uuid.UUID) (*dto.ConfiguracaoResponse, error) {
	cfg, err := s.repo.FirstOrCreate(ctx, &model.ConfiguracaoLoja{
		UserID:    userID,
		LimiteMei: limiteMeiPadrao,
	})
	if err != nil {
		return nil, err
	}
	return configuracaoToResponse(cfg), nil
}

func (s *configuracaoService) Atualizar(ctx context.Context, userID uuid.UUID, req dto.AtualizarConfiguracaoRequest) (*dto.ConfiguracaoResponse, error) {
	if !req.LimiteMei.IsPositive() {
		return nil, errors.New("limite MEI deve ser maior que zero")
	}

	cfg, err := s.repo.FirstOrCreate(ctx, &model.ConfiguracaoLoja{
		UserID:    userID,
		LimiteMei: limiteMeiPadrao,
	})
	if err != nil {
		return nil, err
	}

	cfg.NomeLoja = req.NomeLoja
	cfg.LimiteMei = req.LimiteMei

	if err := s.repo.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return configuracaoToResponse(cfg), nil
}

func (s *configuracaoService) UploadLogo(ctx context.Context, userID uuid.UUID, nome string, r io.Reader) (*dto.ConfiguracaoResponse, error) {
	if s.storage == nil {
		return nil, errors.New("upload de logo indisponível")
	}

	cfg, err := s.repo.FirstOrCreate(ctx, &model.ConfiguracaoLoja{
		UserID:    userID,
		LimiteMei: limiteMeiPadrao,
	})
	if err != nil {
		return nil, err
	}

	url, err := s.storage.Salvar(userID, nome, r)
	if err != nil {
		return nil, err
	}

	cfg.LogoURL = &url
	if err := s.repo.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return configuracaoToResponse(cfg), nil
}

func configuracaoToResponse(c *model.ConfiguracaoLoja) *dto.ConfiguracaoResponse {
	return &dto.ConfiguracaoResponse{
		NomeLoja:  c.NomeLoja,
		LimiteMei: c.LimiteMei,
		LogoURL:   c.LogoURL,
	}
}
