package service

import (
	"context"
	"testing"
	"time"

	"acaimanager/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardResumoAgregaOMes(t *testing.T) {
	vendaRepo := newStubVendaRepo()
	despesaRepo := newStubDespesaRepo()
	fechRepo := newStubFechamentoRepo()
	configRepo := &stubConfiguracaoRepo{}
	userID := uuid.New()

	svc := NewDashboardService(vendaRepo, despesaRepo, fechRepo, configRepo, nil).(*dashboardService)
	agora := time.Date(2026, 8, 20, 10, 0, 0, 0, time.Local)
	svc.agora = func() time.Time { return agora }

	configRepo.cfg = &model.ConfiguracaoLoja{UserID: userID, LimiteMei: dec("81000")}

	seedVenda(vendaRepo, "100.00", time.Date(2026, 8, 5, 12, 0, 0, 0, time.Local))
	seedVenda(vendaRepo, "60.00", time.Date(2026, 8, 12, 12, 0, 0, 0, time.Local))
	seedVenda(vendaRepo, "40.00", time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local))
	// Out of the requested month, must not leak into the monthly numbers.
	seedVenda(vendaRepo, "999.00", time.Date(2026, 7, 1, 12, 0, 0, 0, time.Local))

	tipoID := despesaRepo.seedTipo("Embalagens")
	despesaRepo.seed(model.Despesa{
		UserID: userID, Descricao: "Copos", Valor: dec("30.00"),
		TipoDespesaID: tipoID, Data: time.Date(2026, 8, 3, 0, 0, 0, 0, time.Local),
		Status: model.DespesaPaga,
	})
	despesaRepo.seed(model.Despesa{
		UserID: userID, Descricao: "Aluguel", Valor: dec("900.00"),
		TipoDespesaID: tipoID, Data: time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local),
		Status: model.DespesaPendente,
	})

	resp, err := svc.Resumo(context.Background(), userID, 8, 2026)
	require.NoError(t, err)

	assert.Equal(t, 8, resp.Mes)
	assert.True(t, resp.FaturamentoMes.Equal(dec("200.00")), "faturamento: %s", resp.FaturamentoMes)
	assert.Equal(t, int64(3), resp.TotalVendas)
	assert.True(t, resp.TicketMedio.Equal(dec("66.67")), "ticket: %s", resp.TicketMedio)
	assert.True(t, resp.FaturamentoHoje.Equal(dec("40.00")), "hoje: %s", resp.FaturamentoHoje)
	assert.Equal(t, int64(1), resp.VendasHoje)
	assert.True(t, resp.DespesasMes.Equal(dec("930.00")))
	assert.True(t, resp.DespesasPendente.Equal(dec("900.00")))

	require.Len(t, resp.TopDespesas, 1)
	assert.Equal(t, "Embalagens", resp.TopDespesas[0].Tipo)
	assert.True(t, resp.TopDespesas[0].Total.Equal(dec("930.00")))
}

func TestDashboardTopProdutos(t *testing.T) {
	vendaRepo := newStubVendaRepo()
	svc := NewDashboardService(vendaRepo, newStubDespesaRepo(), newStubFechamentoRepo(), &stubConfiguracaoRepo{}, nil).(*dashboardService)
	agora := time.Date(2026, 8, 20, 10, 0, 0, 0, time.Local)
	svc.agora = func() time.Time { return agora }
	userID := uuid.New()

	criar := func(nome string, qtd int, quando time.Time) {
		valor := dec("10.00")
		v := &model.Venda{
			UserID:     userID,
			ValorTotal: valor.Mul(decimal.NewFromInt(int64(qtd))),
			CreatedAt:  quando,
			Itens: []model.ItemVenda{{
				ProdutoNome:   nome,
				Quantidade:    qtd,
				ValorUnitario: valor,
				CustoUnitario: dec("4.00"),
				Subtotal:      valor.Mul(decimal.NewFromInt(int64(qtd))),
			}},
		}
		require.NoError(t, vendaRepo.Create(context.Background(), nil, v))
	}

	criar("Açaí 500ml", 3, time.Date(2026, 8, 5, 12, 0, 0, 0, time.Local))
	criar("Açaí 300ml", 1, time.Date(2026, 8, 6, 12, 0, 0, 0, time.Local))
	criar("Açaí 500ml", 2, time.Date(2026, 8, 7, 12, 0, 0, 0, time.Local))
	// July sale must not enter the August ranking.
	criar("Açaí 700ml", 9, time.Date(2026, 7, 1, 12, 0, 0, 0, time.Local))

	resp, err := svc.Resumo(context.Background(), userID, 8, 2026)
	require.NoError(t, err)

	require.Len(t, resp.TopProdutos, 2)
	assert.Equal(t, "Açaí 500ml", resp.TopProdutos[0].Nome)
	assert.Equal(t, int64(5), resp.TopProdutos[0].Quantidade)
	assert.True(t, resp.TopProdutos[0].Total.Equal(dec("50.00")), "total: %s", resp.TopProdutos[0].Total)
	assert.Equal(t, "Açaí 300ml", resp.TopProdutos[1].Nome)
}

func TestDashboardResumoDefaultMesCorrente(t *testing.T) {
	vendaRepo := newStubVendaRepo()
	svc := NewDashboardService(vendaRepo, newStubDespesaRepo(), newStubFechamentoRepo(), &stubConfiguracaoRepo{}, nil).(*dashboardService)
	agora := time.Date(2026, 8, 20, 10, 0, 0, 0, time.Local)
	svc.agora = func() time.Time { return agora }

	resp, err := svc.Resumo(context.Background(), uuid.New(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 8, resp.Mes)
	assert.Equal(t, 2026, resp.Ano)
	assert.True(t, resp.TicketMedio.IsZero(), "sem vendas o ticket médio é zero")
}

func TestDashboardInvalidarSemRedis(t *testing.T) {
	svc := NewDashboardService(newStubVendaRepo(), newStubDespesaRepo(), newStubFechamentoRepo(), &stubConfiguracaoRepo{}, nil)

	assert.NoError(t, svc.Invalidar(context.Background(), uuid.New()))
}
