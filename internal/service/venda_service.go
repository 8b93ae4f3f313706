package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"acaimanager/internal/dto"
	"acaimanager/internal/model"
	"acaimanager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendaService interface {
	Registrar(ctx context.Context, userID uuid.UUID, req dto.SalvarVendaRequest) (*dto.VendaResponse, error)
	Atualizar(ctx context.Context, userID, id uuid.UUID, req dto.SalvarVendaRequest) (*dto.VendaResponse, error)
	Excluir(ctx context.Context, userID, id uuid.UUID) error
	Obter(ctx context.Context, userID, id uuid.UUID) (*dto.VendaResponse, error)
	Listar(ctx context.Context, userID uuid.UUID, filter dto.VendaFilter) (*dto.VendaListResponse, error)
}

type vendaService struct {
	repo        repository.VendaRepository
	produtoRepo repository.ProdutoRepository
	canalRepo   repository.CanalRepository
	despesaRepo repository.DespesaRepository
	dashboard   DashboardService
	politica    string
	agora       func() time.Time
}

func NewVendaService(
	repo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
	canalRepo repository.CanalRepository,
	despesaRepo repository.DespesaRepository,
	dashboard DashboardService,
	politica string,
) VendaService {
	return &vendaService{
		repo:        repo,
		produtoRepo: produtoRepo,
		canalRepo:   canalRepo,
		despesaRepo: despesaRepo,
		dashboard:   dashboard,
		politica:    politica,
		agora:       time.Now,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// resolvedVenda carries the pre-flight work shared by Registrar and Atualizar:
// the resolved channel, the snapshot cart lines and the derived totals.
type resolvedVenda struct {
	canal  *model.CanalVenda
	frete  decimal.Decimal
	itens  []model.ItemVenda
	totais TotaisVenda
}

func (s *vendaService) resolver(ctx context.Context, userID uuid.UUID, req dto.SalvarVendaRequest) (*resolvedVenda, error) {
	canalID, err := uuid.Parse(req.CanalVendaID)
	if err != nil {
		return nil, fmt.Errorf("canal_venda_id inválido: %w", err)
	}
	canal, err := s.canalRepo.FindByID(ctx, userID, canalID)
	if err != nil {
		return nil, errors.New("canal de venda não encontrado")
	}

	var itens []model.ItemVenda
	var linhas []ItemVendido
	noCarrinho := make(map[uuid.UUID]bool)
	for _, item := range req.Itens {
		pid, err := uuid.Parse(item.ProdutoID)
		if err != nil {
			return nil, fmt.Errorf("produto_id inválido: %w", err)
		}
		// One line per product: the item diff on update is keyed by product.
		if noCarrinho[pid] {
			return nil, errors.New("produto duplicado no carrinho")
		}
		noCarrinho[pid] = true
		p, err := s.produtoRepo.FindByID(ctx, userID, pid)
		if err != nil {
			return nil, fmt.Errorf("produto %s não encontrado", item.ProdutoID)
		}
		qtd := decimal.NewFromInt(int64(item.Quantidade))
		pidRef := pid
		itens = append(itens, model.ItemVenda{
			ProdutoID:     &pidRef,
			ProdutoNome:   p.Nome,
			Quantidade:    item.Quantidade,
			ValorUnitario: p.ValorVenda,
			CustoUnitario: p.CustoUnitario,
			Subtotal:      p.ValorVenda.Mul(qtd),
		})
		linhas = append(linhas, ItemVendido{
			ValorUnitario: p.ValorVenda,
			CustoUnitario: p.CustoUnitario,
			Quantidade:    item.Quantidade,
		})
	}

	totais := CalcularVenda(linhas, canal.Taxa, req.Frete, req.FreteTaxavel, s.politica)

	return &resolvedVenda{canal: canal, frete: req.Frete, itens: itens, totais: totais}, nil
}

// criarDespesasDaVenda synthesizes the cost-of-goods and channel-fee expenses
// of a sale inside the same transaction that wrote it. Zero-valued side
// effects are skipped.
func (s *vendaService) criarDespesasDaVenda(ctx context.Context, tx *gorm.DB, userID uuid.UUID, venda *model.Venda, custoProdutos decimal.Decimal) error {
	// Local calendar day: the expense must fall in the same month window the
	// sale's revenue is aggregated in.
	agora := s.agora()
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, time.Local)

	if custoProdutos.IsPositive() {
		tipo, err := s.despesaRepo.FirstOrCreateTipo(ctx, tx, userID, model.TipoDespesaCustoProdutos, "📦")
		if err != nil {
			return err
		}
		d := &model.Despesa{
			UserID:        userID,
			Descricao:     fmt.Sprintf("Custo dos produtos - Venda %s", venda.Canal.Nome),
			Valor:         custoProdutos,
			TipoDespesaID: tipo.ID,
			Data:          hoje,
			Status:        model.DespesaPaga,
			VendaID:       &venda.ID,
		}
		if err := s.despesaRepo.Create(ctx, tx, d); err != nil {
			return err
		}
	}

	if venda.TaxaCanal.IsPositive() {
		tipo, err := s.despesaRepo.FirstOrCreateTipo(ctx, tx, userID, model.TipoDespesaTaxaCanal, "💳")
		if err != nil {
			return err
		}
		d := &model.Despesa{
			UserID:        userID,
			Descricao:     fmt.Sprintf("Taxa %s (%s%%)", venda.Canal.Nome, venda.Canal.Taxa.String()),
			Valor:         venda.TaxaCanal,
			TipoDespesaID: tipo.ID,
			Data:          hoje,
			Status:        model.DespesaPaga,
			VendaID:       &venda.ID,
		}
		if err := s.despesaRepo.Create(ctx, tx, d); err != nil {
			return err
		}
	}

	return nil
}

// ── Registrar ────────────────────────────────────────────────────────────────
// One ACID transaction: venda + item snapshots + synthesized expenses. A sale
// is either fully recorded with its side effects or not at all.

func (s *vendaService) Registrar(ctx context.Context, userID uuid.UUID, req dto.SalvarVendaRequest) (*dto.VendaResponse, error) {
	res, err := s.resolver(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	venda := model.Venda{
		UserID:           userID,
		CanalVendaID:     res.canal.ID,
		Frete:            res.frete,
		FreteTaxavel:     req.FreteTaxavel,
		SubtotalProdutos: res.totais.SubtotalProdutos,
		TaxaCanal:        res.totais.TaxaCanal,
		ValorTotal:       res.totais.ValorTotal,
		LucroTotal:       res.totais.LucroTotal,
		Canal:            res.canal,
		Itens:            res.itens,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &venda); err != nil {
			return err
		}
		return s.criarDespesasDaVenda(ctx, tx, userID, &venda, res.totais.CustoProdutos)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.invalidarDashboard(ctx, userID)
	return vendaToResponse(&venda), nil
}

// ── Atualizar ────────────────────────────────────────────────────────────────
// Re-resolves the cart at current catalog prices and patches the item set in
// place: surviving lines are updated, removed lines deleted, new lines
// inserted. Synthesized expenses are rebuilt from scratch inside the same
// transaction.

func (s *vendaService) Atualizar(ctx context.Context, userID, id uuid.UUID, req dto.SalvarVendaRequest) (*dto.VendaResponse, error) {
	atual, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, errors.New("venda não encontrada")
	}

	res, err := s.resolver(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	// Index the existing lines by product so surviving ones keep their row ID.
	existentes := make(map[uuid.UUID]model.ItemVenda)
	for _, it := range atual.Itens {
		if it.ProdutoID != nil {
			existentes[*it.ProdutoID] = it
		}
	}

	atual.CanalVendaID = res.canal.ID
	atual.Frete = res.frete
	atual.FreteTaxavel = req.FreteTaxavel
	atual.SubtotalProdutos = res.totais.SubtotalProdutos
	atual.TaxaCanal = res.totais.TaxaCanal
	atual.ValorTotal = res.totais.ValorTotal
	atual.LucroTotal = res.totais.LucroTotal
	atual.Canal = res.canal

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, atual); err != nil {
			return err
		}

		vistos := make(map[uuid.UUID]bool)
		for i := range res.itens {
			novo := &res.itens[i]
			novo.VendaID = atual.ID
			if velho, ok := existentes[*novo.ProdutoID]; ok {
				novo.ID = velho.ID
				vistos[*novo.ProdutoID] = true
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
		for pid, velho := range existentes {
			if !vistos[pid] {
				removidos = append(removidos, velho.ID)
			}
		}
		// Lines whose product was deleted lost their reference; drop them too,
		// the request carries the full replacement cart.
		for _, it := range atual.Itens {
			if it.ProdutoID == nil {
				removidos = append(removidos, it.ID)
			}
		}
		if err := s.repo.DeleteItens(ctx, tx, removidos); err != nil {
			return err
		}

		if err := s.despesaRepo.DeleteByVenda(ctx, tx, atual.ID); err != nil {
			return err
		}
		return s.criarDespesasDaVenda(ctx, tx, userID, atual, res.totais.CustoProdutos)
	})
	if txErr != nil {
		return nil, txErr
	}

	atual.Itens = res.itens
	s.invalidarDashboard(ctx, userID)
	return vendaToResponse(atual), nil
}

// ── Excluir ──────────────────────────────────────────────────────────────────

func (s *vendaService) Excluir(ctx context.Context, userID, id uuid.UUID) error {
	venda, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return errors.New("venda não encontrada")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.despesaRepo.DeleteByVenda(ctx, tx, venda.ID); err != nil {
			return err
		}
		if err := s.repo.DeleteItensByVenda(ctx, tx, venda.ID); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, userID, venda.ID)
	})
	if txErr != nil {
		return txErr
	}

	s.invalidarDashboard(ctx, userID)
	return nil
}

func (s *vendaService) Obter(ctx context.Context, userID, id uuid.UUID) (*dto.VendaResponse, error) {
	venda, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, errors.New("venda não encontrada")
	}
	return vendaToResponse(venda), nil
}

func (s *vendaService) Listar(ctx context.Context, userID uuid.UUID, filter dto.VendaFilter) (*dto.VendaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	vendas, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.VendaListResponse{
		Data:  make([]dto.VendaResponse, 0, len(vendas)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range vendas {
		resp.Data = append(resp.Data, *vendaToResponse(&vendas[i]))
	}
	return resp, nil
}

func (s *vendaService) invalidarDashboard(ctx context.Context, userID uuid.UUID) {
	if s.dashboard != nil {
		// Best-effort: a stale dashboard self-heals when the TTL expires.
		_ = s.dashboard.Invalidar(ctx, userID)
	}
}

func vendaToResponse(v *model.Venda) *dto.VendaResponse {
	resp := &dto.VendaResponse{
		ID:               v.ID.String(),
		CanalVendaID:     v.CanalVendaID.String(),
		Frete:            v.Frete,
		FreteTaxavel:     v.FreteTaxavel,
		SubtotalProdutos: v.SubtotalProdutos,
		TaxaCanal:        v.TaxaCanal.Round(2),
		ValorTotal:       v.ValorTotal.Round(2),
		LucroTotal:       v.LucroTotal.Round(2),
		Itens:            make([]dto.ItemVendaResponse, 0, len(v.Itens)),
		CreatedAt:        v.CreatedAt.Format(time.RFC3339),
	}
	if v.Canal != nil {
		resp.CanalNome = v.Canal.Nome
	}
	for _, it := range v.Itens {
		resp.Itens = append(resp.Itens, dto.ItemVendaResponse{
			Produto:       it.ProdutoNome,
			Quantidade:    it.Quantidade,
			ValorUnitario: it.ValorUnitario,
			Subtotal:      it.Subtotal,
		})
	}
	return resp
}
