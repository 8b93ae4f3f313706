package service

import (
	"context"
	"errors"
	"fmt"

	"acaimanager/internal/dto"
	"acaimanager/internal/model"
	"acaimanager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ComposicaoService interface {
	Criar(ctx context.Context, userID uuid.UUID, req dto.SalvarComposicaoRequest) (*dto.ComposicaoResponse, error)
	Atualizar(ctx context.Context, userID, id uuid.UUID, req dto.SalvarComposicaoRequest) (*dto.ComposicaoResponse, error)
	Excluir(ctx context.Context, userID, id uuid.UUID) error
	Obter(ctx context.Context, userID, id uuid.UUID) (*dto.ComposicaoResponse, error)
	Listar(ctx context.Context, userID uuid.UUID) ([]dto.ComposicaoResponse, error)
}

type composicaoService struct {
	repo           repository.ComposicaoRepository
	fornecedorRepo repository.FornecedorRepository
}

func NewComposicaoService(repo repository.ComposicaoRepository, fornecedorRepo repository.FornecedorRepository) ComposicaoService {
	return &composicaoService{repo: repo, fornecedorRepo: fornecedorRepo}
}

// resolverItens validates and prices the cost items of a recipe. Each item's
// unit cost is valor_pago / rendimento at 4 decimal places; the recipe total
// is the sum of unit costs, independent of item order.
func (s *composicaoService) resolverItens(ctx context.Context, userID uuid.UUID, reqItens []dto.ItemCustoRequest) ([]model.ItemCusto, decimal.Decimal, error) {
	var itens []model.ItemCusto
	custoTotal := decimal.Zero

	for _, item := range reqItens {
		if item.Rendimento <= 0 {
			return nil, decimal.Zero, fmt.Errorf("rendimento do item %q deve ser maior que zero", item.Nome)
		}

		var fornecedorID *uuid.UUID
		if item.FornecedorID != nil && *item.FornecedorID != "" {
			fid, err := uuid.Parse(*item.FornecedorID)
			if err != nil {
				return nil, decimal.Zero, fmt.Errorf("fornecedor_id inválido: %w", err)
			}
			if _, err := s.fornecedorRepo.FindByID(ctx, userID, fid); err != nil {
				return nil, decimal.Zero, errors.New("fornecedor não encontrado")
			}
			fornecedorID = &fid
		}

		custoUnitario := item.ValorPago.Div(decimal.NewFromInt(int64(item.Rendimento))).Round(4)
		custoTotal = custoTotal.Add(custoUnitario)

		itens = append(itens, model.ItemCusto{
			Nome:          item.Nome,
			FornecedorID:  fornecedorID,
			ValorPago:     item.ValorPago,
			Rendimento:    item.Rendimento,
			CustoUnitario: custoUnitario,
		})
	}

	return itens, custoTotal, nil
}

func (s *composicaoService) Criar(ctx context.Context, userID uuid.UUID, req dto.SalvarComposicaoRequest) (*dto.ComposicaoResponse, error) {
	itens, custoTotal, err := s.resolverItens(ctx, userID, req.Itens)
	if err != nil {
		return nil, err
	}

	comp := model.Composicao{
		UserID:     userID,
		Nome:       req.Nome,
		ImagemURL:  req.ImagemURL,
		CustoTotal: custoTotal,
		Itens:      itens,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, &comp)
	})
	if txErr != nil {
		return nil, txErr
	}

	return composicaoToResponse(&comp), nil
}

// Atualizar patches the cost item set in place: items whose ID came back in
// the request are updated, absent ones deleted, ID-less ones inserted. The
// parent row and the item set change in one transaction so the stored
// custo_total can never drift from its items.
func (s *composicaoService) Atualizar(ctx context.Context, userID, id uuid.UUID, req dto.SalvarComposicaoRequest) (*dto.ComposicaoResponse, error) {
	atual, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, errors.New("composição não encontrada")
	}

	itens, custoTotal, err := s.resolverItens(ctx, userID, req.Itens)
	if err != nil {
		return nil, err
	}

	existentes := make(map[uuid.UUID]bool)
	for _, it := range atual.Itens {
		existentes[it.ID] = true
	}

	atual.Nome = req.Nome
	atual.ImagemURL = req.ImagemURL
	atual.CustoTotal = custoTotal

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, atual); err != nil {
			return err
		}

		vistos := make(map[uuid.UUID]bool)
		for i := range itens {
			novo := &itens[i]
			novo.ComposicaoID = atual.ID

			reqItem := req.Itens[i]
			if reqItem.ID != nil && *reqItem.ID != "" {
				iid, err := uuid.Parse(*reqItem.ID)
				if err != nil {
					return fmt.Errorf("id de item inválido: %w", err)
				}
				if !existentes[iid] {
					return errors.New("item de custo não pertence à composição")
				}
				novo.ID = iid
				vistos[iid] = true
				if err := s.repo.UpdateItem(ctx, tx, novo); err != nil {
					return err
				}
				continue
			}
			if err := s.repo.CreateItem(ctx, tx, novo); err != nil {
				return err
			}
		}

		var removidos []uuid.UUID
		for _, it := range atual.Itens {
			if !vistos[it.ID] {
				removidos = append(removidos, it.ID)
			}
		}
		return s.repo.DeleteItens(ctx, tx, removidos)
	})
	if txErr != nil {
		return nil, txErr
	}

	atual.Itens = itens
	return composicaoToResponse(atual), nil
}

func (s *composicaoService) Excluir(ctx context.Context, userID, id uuid.UUID) error {
	comp, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return errors.New("composição não encontrada")
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteItensByComposicao(ctx, tx, comp.ID); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, userID, comp.ID)
	})
}

func (s *composicaoService) Obter(ctx context.Context, userID, id uuid.UUID) (*dto.ComposicaoResponse, error) {
	comp, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, errors.New("composição não encontrada")
	}
	return composicaoToResponse(comp), nil
}

func (s *composicaoService) Listar(ctx context.Context, userID uuid.UUID) ([]dto.ComposicaoResponse, error) {
	composicoes, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ComposicaoResponse, 0, len(composicoes))
	for i := range composicoes {
		resp = append(resp, *composicaoToResponse(&composicoes[i]))
	}
	return resp, nil
}

func composicaoToResponse(c *model.Composicao) *dto.ComposicaoResponse {
	resp := &dto.ComposicaoResponse{
		ID:         c.ID.String(),
		Nome:       c.Nome,
		ImagemURL:  c.ImagemURL,
		CustoTotal: c.CustoTotal,
		Itens:      make([]dto.ItemCustoResponse, 0, len(c.Itens)),
	}
	for _, it := range c.Itens {
		itemResp := dto.ItemCustoResponse{
			ID:            it.ID.String(),
			Nome:          it.Nome,
			ValorPago:     it.ValorPago,
			Rendimento:    it.Rendimento,
			CustoUnitario: it.CustoUnitario,
		}
		if it.FornecedorID != nil {
			fid := it.FornecedorID.String()
			itemResp.FornecedorID = &fid
		}
		if it.Fornecedor != nil {
			itemResp.FornecedorNome = it.Fornecedor.Nome
		}
		resp.Itens = append(resp.Itens, itemResp)
	}
	return resp
}
