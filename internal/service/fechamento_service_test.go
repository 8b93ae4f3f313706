package service

import (
	"context"
	"testing"
	"time"

	"acaimanager/internal/dto"
	"acaimanager/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVenda(r *stubVendaRepo, valor string, quando time.Time) {
	id := uuid.New()
	r.vendas[id] = &model.Venda{
		ID:         id,
		ValorTotal: dec(valor),
		LucroTotal: decimal.Zero,
		CreatedAt:  quando,
	}
}

type fechamentoFixture struct {
	svc         *fechamentoService
	repo        *stubFechamentoRepo
	vendaRepo   *stubVendaRepo
	despesaRepo *stubDespesaRepo
	configRepo  *stubConfiguracaoRepo
	userID      uuid.UUID
}

func newFechamentoFixture(agora time.Time) *fechamentoFixture {
	repo := newStubFechamentoRepo()
	vendaRepo := newStubVendaRepo()
	despesaRepo := newStubDespesaRepo()
	configRepo := &stubConfiguracaoRepo{}

	svc := NewFechamentoService(repo, vendaRepo, despesaRepo, configRepo, nil).(*fechamentoService)
	svc.agora = func() time.Time { return agora }

	return &fechamentoFixture{
		svc:         svc,
		repo:        repo,
		vendaRepo:   vendaRepo,
		despesaRepo: despesaRepo,
		configRepo:  configRepo,
		userID:      uuid.New(),
	}
}

func TestFecharBackfillSemLacunas(t *testing.T) {
	// Mid-April: January through March must close, April stays open.
	f := newFechamentoFixture(time.Date(2026, 4, 15, 10, 0, 0, 0, time.Local))
	ctx := context.Background()

	seedVenda(f.vendaRepo, "100.00", time.Date(2026, 1, 10, 12, 0, 0, 0, time.Local))
	seedVenda(f.vendaRepo, "50.00", time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local))
	// February has no sales on purpose.

	require.NoError(t, f.svc.Fechar(ctx, f.userID))

	fechados, err := f.repo.ListAll(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, fechados, 3, "zero-sale months still get a row")

	// Listing is newest first.
	assert.Equal(t, 3, fechados[0].Mes)
	assert.True(t, fechados[0].Faturamento.Equal(dec("50.00")))
	assert.Equal(t, 2, fechados[1].Mes)
	assert.True(t, fechados[1].Faturamento.IsZero())
	assert.Equal(t, 1, fechados[2].Mes)
	assert.True(t, fechados[2].Faturamento.Equal(dec("100.00")))
}

func TestFecharIdempotente(t *testing.T) {
	f := newFechamentoFixture(time.Date(2026, 4, 15, 10, 0, 0, 0, time.Local))
	ctx := context.Background()

	seedVenda(f.vendaRepo, "100.00", time.Date(2026, 1, 10, 12, 0, 0, 0, time.Local))

	require.NoError(t, f.svc.Fechar(ctx, f.userID))
	require.NoError(t, f.svc.Fechar(ctx, f.userID))

	fechados, err := f.repo.ListAll(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, fechados, 3)
}

func TestFecharSemHistorico(t *testing.T) {
	f := newFechamentoFixture(time.Date(2026, 4, 15, 10, 0, 0, 0, time.Local))

	require.NoError(t, f.svc.Fechar(context.Background(), f.userID))

	fechados, _ := f.repo.ListAll(context.Background(), f.userID)
	assert.Empty(t, fechados)
}

func TestRegistrarTransferenciaMesFechado(t *testing.T) {
	f := newFechamentoFixture(time.Date(2026, 4, 15, 10, 0, 0, 0, time.Local))
	ctx := context.Background()

	seedVenda(f.vendaRepo, "100.00", time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local))
	require.NoError(t, f.svc.Fechar(ctx, f.userID))

	resp, err := f.svc.RegistrarTransferencia(ctx, f.userID, dto.RegistrarTransferenciaRequest{
		Mes: 3, Ano: 2026, Valor: dec("80.00"),
	})
	require.NoError(t, err)
	assert.True(t, resp.TransferenciaPF.Equal(dec("80.00")))
}

func TestRegistrarTransferenciaMesAberto(t *testing.T) {
	f := newFechamentoFixture(time.Date(2026, 4, 15, 10, 0, 0, 0, time.Local))

	_, err := f.svc.RegistrarTransferencia(context.Background(), f.userID, dto.RegistrarTransferenciaRequest{
		Mes: 4, Ano: 2026, Valor: dec("80.00"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mês ainda não fechado")
}

func TestTransferenciaSobreviveAoRefechamento(t *testing.T) {
	f := newFechamentoFixture(time.Date(2026, 4, 15, 10, 0, 0, 0, time.Local))
	ctx := context.Background()

	seedVenda(f.vendaRepo, "100.00", time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local))
	require.NoError(t, f.svc.Fechar(ctx, f.userID))

	_, err := f.svc.RegistrarTransferencia(ctx, f.userID, dto.RegistrarTransferenciaRequest{
		Mes: 3, Ano: 2026, Valor: dec("80.00"),
	})
	require.NoError(t, err)

	// A later close pass must refresh revenue without touching the transfer.
	require.NoError(t, f.svc.Fechar(ctx, f.userID))

	row, err := f.repo.Find(ctx, f.userID, 3, 2026)
	require.NoError(t, err)
	assert.True(t, row.TransferenciaPF.Equal(dec("80.00")))
}

func TestResumoMeiComLimiteConfigurado(t *testing.T) {
	f := newFechamentoFixture(time.Date(2026, 4, 15, 10, 0, 0, 0, time.Local))
	ctx := context.Background()

	f.configRepo.cfg = &model.ConfiguracaoLoja{
		ID:        uuid.New(),
		UserID:    f.userID,
		NomeLoja:  "Açaí da Praça",
		LimiteMei: dec("81000"),
	}

	seedVenda(f.vendaRepo, "40000.00", time.Date(2026, 1, 10, 12, 0, 0, 0, time.Local))
	seedVenda(f.vendaRepo, "25000.00", time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local))
	// Running month: counted live, never persisted.
	seedVenda(f.vendaRepo, "6000.00", time.Date(2026, 4, 2, 12, 0, 0, 0, time.Local))

	resumo, err := f.svc.Resumo(ctx, f.userID)
	require.NoError(t, err)

	assert.True(t, resumo.MesCorrente.Faturamento.Equal(dec("6000.00")))
	assert.True(t, resumo.Mei.FaturamentoAnual.Equal(dec("71000.00")))
	assert.Equal(t, model.MeiAlerta, resumo.Mei.Status)
	// 71000 / 81000 * 100
	assert.True(t, resumo.Mei.Percentual.Equal(dec("87.65")), "percentual: %s", resumo.Mei.Percentual)

	// April must not have been persisted by the resumo pass.
	_, err = f.repo.Find(ctx, f.userID, 4, 2026)
	require.Error(t, err)
}

func TestDadosRelatorioMesCorrente(t *testing.T) {
	f := newFechamentoFixture(time.Date(2026, 4, 15, 10, 0, 0, 0, time.Local))
	ctx := context.Background()

	seedVenda(f.vendaRepo, "300.00", time.Date(2026, 4, 2, 12, 0, 0, 0, time.Local))
	f.despesaRepo.seed(model.Despesa{
		UserID: f.userID,
		Valor:  dec("45.00"),
		Data:   time.Date(2026, 4, 5, 0, 0, 0, 0, time.Local),
		Status: model.DespesaPaga,
	})

	dados, err := f.svc.DadosRelatorio(ctx, f.userID, 4, 2026)
	require.NoError(t, err)

	assert.True(t, dados.Faturamento.Equal(dec("300.00")))
	assert.True(t, dados.Despesas.Equal(dec("45.00")))
	assert.Equal(t, int64(1), dados.TotalVendas)
}

func TestDadosRelatorioMesNaoFechado(t *testing.T) {
	f := newFechamentoFixture(time.Date(2026, 4, 15, 10, 0, 0, 0, time.Local))

	// A future month has no closed row and is not the running month.
	_, err := f.svc.DadosRelatorio(context.Background(), f.userID, 7, 2026)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mês ainda não fechado")
}

func TestEnviarRelatorioSemDispatcher(t *testing.T) {
	f := newFechamentoFixture(time.Date(2026, 4, 15, 10, 0, 0, 0, time.Local))

	err := f.svc.EnviarRelatorio(context.Background(), f.userID, dto.EnviarRelatorioRequest{
		Mes: 4, Ano: 2026, Email: "dono@loja.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indisponível")
}
