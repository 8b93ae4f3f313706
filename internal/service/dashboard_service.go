package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"acaimanager/internal/dto"
	"acaimanager/internal/model"
	"acaimanager/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// dashboardCacheTTL keeps the home screen snappy without letting the numbers
// go stale for long; writes invalidate eagerly anyway.
const dashboardCacheTTL = 60 * time.Second

type DashboardService interface {
	Resumo(ctx context.Context, userID uuid.UUID, mes, ano int) (*dto.DashboardResponse, error)
	Invalidar(ctx context.Context, userID uuid.UUID) error
}

type dashboardService struct {
	vendaRepo   repository.VendaRepository
	despesaRepo repository.DespesaRepository
	fechRepo    repository.FechamentoRepository
	configRepo  repository.ConfiguracaoRepository
	rdb         *redis.Client
	agora       func() time.Time
}

func NewDashboardService(
	vendaRepo repository.VendaRepository,
	despesaRepo repository.DespesaRepository,
	fechRepo repository.FechamentoRepository,
	configRepo repository.ConfiguracaoRepository,
	rdb *redis.Client,
) DashboardService {
	return &dashboardService{
		vendaRepo:   vendaRepo,
		despesaRepo: despesaRepo,
		fechRepo:    fechRepo,
		configRepo:  configRepo,
		rdb:         rdb,
		agora:       time.Now,
	}
}

func dashboardCacheKey(userID uuid.UUID, mes, ano int) string {
	return fmt.Sprintf("dashboard:%s:%d-%02d", userID, ano, mes)
}

func (s *dashboardService) Resumo(ctx context.Context, userID uuid.UUID, mes, ano int) (*dto.DashboardResponse, error) {
	agora := s.agora()
	if mes == 0 || ano == 0 {
		mes = int(agora.Month())
		ano = agora.Year()
	}

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, dashboardCacheKey(userID, mes, ano)).Result(); err == nil {
			var cached dto.DashboardResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	resp, err := s.montar(ctx, userID, mes, ano, agora)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, dashboardCacheKey(userID, mes, ano), data, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("dashboard: cache write failed")
			}
		}
	}
	return resp, nil
}

func (s *dashboardService) montar(ctx context.Context, userID uuid.UUID, mes, ano int, agora time.Time) (*dto.DashboardResponse, error) {
	inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.Local)
	fim := inicio.AddDate(0, 1, 0)

	agg, err := s.vendaRepo.Agregado(ctx, userID, inicio, fim)
	if err != nil {
		return nil, err
	}

	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, time.Local)
	aggHoje, err := s.vendaRepo.Agregado(ctx, userID, hoje, hoje.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	despesasMes, err := s.despesaRepo.SumPorStatus(ctx, userID, "", inicio, fim)
	if err != nil {
		return nil, err
	}
	pendentes, err := s.despesaRepo.SumPorStatus(ctx, userID, model.DespesaPendente, inicio, fim)
	if err != nil {
		return nil, err
	}

	porCanal, err := s.vendaRepo.AgregadoPorCanal(ctx, userID, inicio, fim)
	if err != nil {
		return nil, err
	}

	topProdutos, err := s.vendaRepo.TopProdutos(ctx, userID, inicio, fim, 5)
	if err != nil {
		return nil, err
	}

	topTipos, err := s.despesaRepo.TopTipos(ctx, userID, inicio, fim, 5)
	if err != nil {
		return nil, err
	}

	// Annual MEI position: closed months of the year plus the live month.
	anual := decimal.Zero
	fechados, err := s.fechRepo.ListByAno(ctx, userID, agora.Year())
	if err != nil {
		return nil, err
	}
	for _, f := range fechados {
		anual = anual.Add(f.Faturamento)
	}
	inicioAtual := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, time.Local)
	corrente, err := s.vendaRepo.SumValorTotal(ctx, userID, inicioAtual, inicioAtual.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	anual = anual.Add(corrente)

	limite := decimal.Zero
	if cfg, err := s.configRepo.Find(ctx, userID); err == nil {
		limite = cfg.LimiteMei
	}
	status, percentual := model.ClassificarMei(anual, limite)

	ticketMedio := decimal.Zero
	if agg.Total > 0 {
		ticketMedio = agg.Faturamento.Div(decimal.NewFromInt(agg.Total)).Round(2)
	}

	resp := &dto.DashboardResponse{
		Mes:              mes,
		Ano:              ano,
		FaturamentoHoje:  aggHoje.Faturamento,
		LucroHoje:        aggHoje.Lucro,
		VendasHoje:       aggHoje.Total,
		FaturamentoMes:   agg.Faturamento,
		LucroMes:         agg.Lucro,
		DespesasMes:      despesasMes,
		DespesasPendente: pendentes,
		TotalVendas:      agg.Total,
		TicketMedio:      ticketMedio,
		PorCanal:         make([]dto.VendasPorCanal, 0, len(porCanal)),
		TopProdutos:      make([]dto.ProdutoMaisVendido, 0, len(topProdutos)),
		TopDespesas:      make([]dto.DespesaPorTipo, 0, len(topTipos)),
		Mei: dto.MeiStatusResponse{
			FaturamentoAnual: anual,
			Limite:           limite,
			Percentual:       percentual,
			Status:           status,
		},
	}
	for _, c := range porCanal {
		resp.PorCanal = append(resp.PorCanal, dto.VendasPorCanal{
			Canal:      c.Canal,
			Icone:      c.Icone,
			Quantidade: c.Quantidade,
			Total:      c.Total,
		})
	}
	for _, p := range topProdutos {
		resp.TopProdutos = append(resp.TopProdutos, dto.ProdutoMaisVendido{
			Nome:       p.Nome,
			Quantidade: p.Quantidade,
			Total:      p.Total,
		})
	}
	for _, tp := range topTipos {
		resp.TopDespesas = append(resp.TopDespesas, dto.DespesaPorTipo{
			Tipo:  tp.Tipo,
			Emoji: tp.Emoji,
			Total: tp.Total,
		})
	}
	return resp, nil
}

// Invalidar drops every cached month of the user. Sales and expenses can be
// edited retroactively, so a single-key delete would leave stale history.
func (s *dashboardService) Invalidar(ctx context.Context, userID uuid.UUID) error {
	if s.rdb == nil {
		return nil
	}
	pattern := fmt.Sprintf("dashboard:%s:*", userID)
	iter := s.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := s.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
