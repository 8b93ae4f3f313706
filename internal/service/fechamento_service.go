package service

import (
	"context"
	"errors"
	"time"

	"acaimanager/internal/dto"
	"acaimanager/internal/model"
	"acaimanager/internal/repository"
	"acaimanager/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FechamentoService interface {
	// Fechar closes every elapsed month that is still open, oldest first.
	Fechar(ctx context.Context, userID uuid.UUID) error
	Resumo(ctx context.Context, userID uuid.UUID) (*dto.ResumoFechamentoResponse, error)
	RegistrarTransferencia(ctx context.Context, userID uuid.UUID, req dto.RegistrarTransferenciaRequest) (*dto.FechamentoResponse, error)
	DadosRelatorio(ctx context.Context, userID uuid.UUID, mes, ano int) (*dto.RelatorioFechamento, error)
	EnviarRelatorio(ctx context.Context, userID uuid.UUID, req dto.EnviarRelatorioRequest) error
}

type fechamentoService struct {
	repo        repository.FechamentoRepository
	vendaRepo   repository.VendaRepository
	despesaRepo repository.DespesaRepository
	configRepo  repository.ConfiguracaoRepository
	dispatcher  *worker.Dispatcher
	agora       func() time.Time
}

func NewFechamentoService(
	repo repository.FechamentoRepository,
	vendaRepo repository.VendaRepository,
	despesaRepo repository.DespesaRepository,
	configRepo repository.ConfiguracaoRepository,
	dispatcher *worker.Dispatcher,
) FechamentoService {
	return &fechamentoService{
		repo:        repo,
		vendaRepo:   vendaRepo,
		despesaRepo: despesaRepo,
		configRepo:  configRepo,
		dispatcher:  dispatcher,
		agora:       time.Now,
	}
}

func inicioDoMes(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

// ── Fechar ───────────────────────────────────────────────────────────────────
// Walks forward from the month after the last closed one (or the month of the
// first recorded sale) up to, and excluding, the current month. Each step sums
// the month's sales and upserts the aggregate, so re-running after a gap of
// several months backfills every missing row with no duplicates. Months with
// zero sales still produce a row: a gapless series is what the annual total
// and the report history rely on.

func (s *fechamentoService) Fechar(ctx context.Context, userID uuid.UUID) error {
	inicioAtual := inicioDoMes(s.agora())

	ultimo, err := s.repo.Ultimo(ctx, userID)
	if err != nil {
		return err
	}

	var cursor time.Time
	if ultimo != nil {
		cursor = time.Date(ultimo.Ano, time.Month(ultimo.Mes), 1, 0, 0, 0, 0, time.Local).AddDate(0, 1, 0)
	} else {
		primeira, err := s.vendaRepo.PrimeiraVenda(ctx, userID)
		if err != nil {
			return err
		}
		if primeira == nil {
			return nil // no history yet, nothing to close
		}
		cursor = inicioDoMes(*primeira)
	}

	for cursor.Before(inicioAtual) {
		fim := cursor.AddDate(0, 1, 0)
		faturamento, err := s.vendaRepo.SumValorTotal(ctx, userID, cursor, fim)
		if err != nil {
			return err
		}
		f := &model.FechamentoMensal{
			UserID:      userID,
			Mes:         int(cursor.Month()),
			Ano:         cursor.Year(),
			Faturamento: faturamento,
		}
		if err := s.repo.Upsert(ctx, f); err != nil {
			return err
		}
		cursor = fim
	}
	return nil
}

// ── Resumo ───────────────────────────────────────────────────────────────────

func (s *fechamentoService) Resumo(ctx context.Context, userID uuid.UUID) (*dto.ResumoFechamentoResponse, error) {
	if err := s.Fechar(ctx, userID); err != nil {
		return nil, err
	}

	agora := s.agora()
	inicioAtual := inicioDoMes(agora)

	fechados, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The running month is always computed live, never persisted.
	faturamentoCorrente, err := s.vendaRepo.SumValorTotal(ctx, userID, inicioAtual, inicioAtual.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}

	anual := faturamentoCorrente
	for _, f := range fechados {
		if f.Ano == agora.Year() {
			anual = anual.Add(f.Faturamento)
		}
	}

	limite := decimal.Zero
	if cfg, err := s.configRepo.Find(ctx, userID); err == nil {
		limite = cfg.LimiteMei
	}
	status, percentual := model.ClassificarMei(anual, limite)

	resp := &dto.ResumoFechamentoResponse{
		Fechados: make([]dto.FechamentoResponse, 0, len(fechados)),
		MesCorrente: dto.MesCorrenteResponse{
			Mes:         int(agora.Month()),
			Ano:         agora.Year(),
			Faturamento: faturamentoCorrente,
		},
		Mei: dto.MeiStatusResponse{
			FaturamentoAnual: anual,
			Limite:           limite,
			Percentual:       percentual,
			Status:           status,
		},
	}
	for _, f := range fechados {
		resp.Fechados = append(resp.Fechados, fechamentoToResponse(&f))
	}
	return resp, nil
}

// ── RegistrarTransferencia ───────────────────────────────────────────────────

func (s *fechamentoService) RegistrarTransferencia(ctx context.Context, userID uuid.UUID, req dto.RegistrarTransferenciaRequest) (*dto.FechamentoResponse, error) {
	f, err := s.repo.Find(ctx, userID, req.Mes, req.Ano)
	if err == gorm.ErrRecordNotFound {
		return nil, errors.New("mês ainda não fechado")
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.AtualizarTransferencia(ctx, userID, req.Mes, req.Ano, req.Valor); err != nil {
		return nil, err
	}
	f.TransferenciaPF = req.Valor

	resp := fechamentoToResponse(f)
	return &resp, nil
}

// ── Relatório ────────────────────────────────────────────────────────────────

func (s *fechamentoService) DadosRelatorio(ctx context.Context, userID uuid.UUID, mes, ano int) (*dto.RelatorioFechamento, error) {
	if err := s.Fechar(ctx, userID); err != nil {
		return nil, err
	}

	agora := s.agora()
	inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.Local)
	fim := inicio.AddDate(0, 1, 0)

	var faturamento, transferencia decimal.Decimal
	if f, err := s.repo.Find(ctx, userID, mes, ano); err == nil {
		faturamento = f.Faturamento
		transferencia = f.TransferenciaPF
	} else if mes == int(agora.Month()) && ano == agora.Year() {
		// Running month: live aggregate.
		faturamento, err = s.vendaRepo.SumValorTotal(ctx, userID, inicio, fim)
		if err != nil {
			return nil, err
		}
	} else {
		return nil, errors.New("mês ainda não fechado")
	}

	agg, err := s.vendaRepo.Agregado(ctx, userID, inicio, fim)
	if err != nil {
		return nil, err
	}
	despesas, err := s.despesaRepo.SumPorStatus(ctx, userID, "", inicio, fim)
	if err != nil {
		return nil, err
	}

	nomeLoja := ""
	limite := decimal.Zero
	if cfg, err := s.configRepo.Find(ctx, userID); err == nil {
		nomeLoja = cfg.NomeLoja
		limite = cfg.LimiteMei
	}

	anual := decimal.Zero
	fechadosAno, err := s.repo.ListByAno(ctx, userID, ano)
	if err != nil {
		return nil, err
	}
	for _, f := range fechadosAno {
		anual = anual.Add(f.Faturamento)
	}
	if ano == agora.Year() {
		inicioAtual := inicioDoMes(agora)
		corrente, err := s.vendaRepo.SumValorTotal(ctx, userID, inicioAtual, inicioAtual.AddDate(0, 1, 0))
		if err != nil {
			return nil, err
		}
		anual = anual.Add(corrente)
	}
	status, _ := model.ClassificarMei(anual, limite)

	return &dto.RelatorioFechamento{
		NomeLoja:        nomeLoja,
		Mes:             mes,
		Ano:             ano,
		Faturamento:     faturamento,
		TransferenciaPF: transferencia,
		TotalVendas:     agg.Total,
		Lucro:           agg.Lucro,
		Despesas:        despesas,
		MeiAnual:        anual,
		MeiLimite:       limite,
		MeiStatus:       status,
	}, nil
}

// EnviarRelatorio enqueues the report mail job. Rendering and delivery happen
// in the worker pool; the caller only learns whether the job was accepted.
func (s *fechamentoService) EnviarRelatorio(ctx context.Context, userID uuid.UUID, req dto.EnviarRelatorioRequest) error {
	if _, err := s.DadosRelatorio(ctx, userID, req.Mes, req.Ano); err != nil {
		return err
	}
	if s.dispatcher == nil {
		return errors.New("envio de relatório indisponível")
	}
	return s.dispatcher.EnqueueRelatorio(ctx, worker.RelatorioJobPayload{
		UserID: userID.String(),
		Mes:    req.Mes,
		Ano:    req.Ano,
		Email:  req.Email,
	})
}

func fechamentoToResponse(f *model.FechamentoMensal) dto.FechamentoResponse {
	return dto.FechamentoResponse{
		ID:              f.ID.String(),
		Mes:             f.Mes,
		Ano:             f.Ano,
		Faturamento:     f.Faturamento,
		TransferenciaPF: f.TransferenciaPF,
	}
}
