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
	"github.com/rs/zerolog/log"
)

type DespesaService interface {
	Criar(ctx context.Context, userID uuid.UUID, req dto.SalvarDespesaRequest) (*dto.DespesaResponse, error)
	Atualizar(ctx context.Context, userID, id uuid.UUID, req dto.SalvarDespesaRequest) (*dto.DespesaResponse, error)
	Excluir(ctx context.Context, userID, id uuid.UUID) error
	MarcarPaga(ctx context.Context, userID, id uuid.UUID) (*dto.DespesaResponse, error)
	Listar(ctx context.Context, userID uuid.UUID, filter dto.DespesaFilter) (*dto.DespesaListResponse, error)

	CriarTipo(ctx context.Context, userID uuid.UUID, req dto.SalvarTipoDespesaRequest) (*dto.TipoDespesaResponse, error)
	ListarTipos(ctx context.Context, userID uuid.UUID) ([]dto.TipoDespesaResponse, error)

	// GerarRecorrentes materializes this month's instance of every recurring
	// template that does not have one yet. Returns how many were created.
	GerarRecorrentes(ctx context.Context, userID uuid.UUID) (int, error)
}

type despesaService struct {
	repo      repository.DespesaRepository
	dashboard DashboardService
	agora     func() time.Time
}

func NewDespesaService(repo repository.DespesaRepository, dashboard DashboardService) DespesaService {
	return &despesaService{repo: repo, dashboard: dashboard, agora: time.Now}
}

func (s *despesaService) resolver(ctx context.Context, userID uuid.UUID, req dto.SalvarDespesaRequest) (*model.Despesa, error) {
	tipoID, err := uuid.Parse(req.TipoDespesaID)
	if err != nil {
		return nil, fmt.Errorf("tipo_despesa_id inválido: %w", err)
	}
	if _, err := s.repo.FindTipoByID(ctx, userID, tipoID); err != nil {
		return nil, errors.New("tipo de despesa não encontrado")
	}

	data, err := time.ParseInLocation("2006-01-02", req.Data, time.Local)
	if err != nil {
		return nil, errors.New("data inválida, use o formato AAAA-MM-DD")
	}

	if req.Recorrente && req.DataVencimentoDia == nil {
		return nil, errors.New("despesa recorrente exige o dia de vencimento")
	}
	// The due day only makes sense on a template.
	if !req.Recorrente {
		req.DataVencimentoDia = nil
	}

	return &model.Despesa{
		UserID:            userID,
		Descricao:         req.Descricao,
		Valor:             req.Valor,
		TipoDespesaID:     tipoID,
		Data:              data,
		Status:            req.Status,
		Recorrente:        req.Recorrente,
		DataVencimentoDia: req.DataVencimentoDia,
	}, nil
}

func (s *despesaService) Criar(ctx context.Context, userID uuid.UUID, req dto.SalvarDespesaRequest) (*dto.DespesaResponse, error) {
	d, err := s.resolver(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, s.repo.DB(), d); err != nil {
		return nil, err
	}
	s.invalidarDashboard(ctx, userID)
	return despesaToResponse(d), nil
}

func (s *despesaService) Atualizar(ctx context.Context, userID, id uuid.UUID, req dto.SalvarDespesaRequest) (*dto.DespesaResponse, error) {
	atual, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, errors.New("despesa não encontrada")
	}
	if atual.VendaID != nil {
		return nil, errors.New("despesa gerada por venda não pode ser editada")
	}

	novo, err := s.resolver(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	atual.Descricao = novo.Descricao
	atual.Valor = novo.Valor
	atual.TipoDespesaID = novo.TipoDespesaID
	atual.Data = novo.Data
	atual.Status = novo.Status
	atual.Recorrente = novo.Recorrente
	atual.DataVencimentoDia = novo.DataVencimentoDia
	atual.Tipo = nil

	if err := s.repo.Update(ctx, atual); err != nil {
		return nil, err
	}
	s.invalidarDashboard(ctx, userID)
	return despesaToResponse(atual), nil
}

func (s *despesaService) Excluir(ctx context.Context, userID, id uuid.UUID) error {
	atual, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return errors.New("despesa não encontrada")
	}
	if atual.VendaID != nil {
		return errors.New("despesa gerada por venda não pode ser excluída; exclua a venda")
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidarDashboard(ctx, userID)
	return nil
}

func (s *despesaService) MarcarPaga(ctx context.Context, userID, id uuid.UUID) (*dto.DespesaResponse, error) {
	atual, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, errors.New("despesa não encontrada")
	}
	if atual.Status == model.DespesaPaga {
		return despesaToResponse(atual), nil
	}

	atual.Status = model.DespesaPaga
	atual.Tipo = nil
	if err := s.repo.Update(ctx, atual); err != nil {
		return nil, err
	}
	s.invalidarDashboard(ctx, userID)
	return despesaToResponse(atual), nil
}

func (s *despesaService) Listar(ctx context.Context, userID uuid.UUID, filter dto.DespesaFilter) (*dto.DespesaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	despesas, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.DespesaListResponse{
		Data:  make([]dto.DespesaResponse, 0, len(despesas)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range despesas {
		resp.Data = append(resp.Data, *despesaToResponse(&despesas[i]))
	}
	return resp, nil
}

func (s *despesaService) CriarTipo(ctx context.Context, userID uuid.UUID, req dto.SalvarTipoDespesaRequest) (*dto.TipoDespesaResponse, error) {
	t := &model.TipoDespesa{UserID: userID, Nome: req.Nome, Emoji: req.Emoji}
	if err := s.repo.CreateTipo(ctx, t); err != nil {
		return nil, err
	}
	resp := tipoToResponse(t)
	return &resp, nil
}

func (s *despesaService) ListarTipos(ctx context.Context, userID uuid.UUID) ([]dto.TipoDespesaResponse, error) {
	tipos, err := s.repo.ListTipos(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TipoDespesaResponse, 0, len(tipos))
	for i := range tipos {
		resp = append(resp, tipoToResponse(&tipos[i]))
	}
	return resp, nil
}

// ── GerarRecorrentes ─────────────────────────────────────────────────────────
// Idempotent: a template yields at most one instance per month (guarded by
// modelo_id + month range). Due days beyond the month's length clamp to its
// last day, so a day-31 rent lands on Feb 28.

func (s *despesaService) GerarRecorrentes(ctx context.Context, userID uuid.UUID) (int, error) {
	modelos, err := s.repo.ListModelos(ctx, userID)
	if err != nil {
		return 0, err
	}

	agora := s.agora()
	inicio := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, time.Local)
	fim := inicio.AddDate(0, 1, 0)
	ultimoDia := fim.AddDate(0, 0, -1).Day()

	criadas := 0
	for i := range modelos {
		modelo := &modelos[i]
		if modelo.DataVencimentoDia == nil {
			continue
		}

		existe, err := s.repo.ExisteInstancia(ctx, userID, modelo.ID, inicio, fim)
		if err != nil {
			return criadas, err
		}
		if existe {
			continue
		}

		dia := *modelo.DataVencimentoDia
		if dia > ultimoDia {
			dia = ultimoDia
		}

		modeloID := modelo.ID
		instancia := &model.Despesa{
			UserID:        userID,
			Descricao:     modelo.Descricao,
			Valor:         modelo.Valor,
			TipoDespesaID: modelo.TipoDespesaID,
			Data:          time.Date(agora.Year(), agora.Month(), dia, 0, 0, 0, 0, time.Local),
			Status:        model.DespesaPendente,
			ModeloID:      &modeloID,
		}
		if err := s.repo.Create(ctx, s.repo.DB(), instancia); err != nil {
			return criadas, err
		}
		criadas++
	}

	if criadas > 0 {
		log.Info().Str("user_id", userID.String()).Int("criadas", criadas).Msg("despesas recorrentes geradas")
		s.invalidarDashboard(ctx, userID)
	}
	return criadas, nil
}

func (s *despesaService) invalidarDashboard(ctx context.Context, userID uuid.UUID) {
	if s.dashboard != nil {
		_ = s.dashboard.Invalidar(ctx, userID)
	}
}

func tipoToResponse(t *model.TipoDespesa) dto.TipoDespesaResponse {
	return dto.TipoDespesaResponse{ID: t.ID.String(), Nome: t.Nome, Emoji: t.Emoji}
}

func despesaToResponse(d *model.Despesa) *dto.DespesaResponse {
	resp := &dto.DespesaResponse{
		ID:                d.ID.String(),
		Descricao:         d.Descricao,
		Valor:             d.Valor,
		Data:              d.Data.Format("2006-01-02"),
		Status:            d.Status,
		Recorrente:        d.Recorrente,
		DataVencimentoDia: d.DataVencimentoDia,
		CreatedAt:         d.CreatedAt.Format(time.RFC3339),
	}
	if d.Tipo != nil {
		t := tipoToResponse(d.Tipo)
		resp.Tipo = &t
	}
	if d.VendaID != nil {
		v := d.VendaID.String()
		resp.VendaID = &v
	}
	return resp
}
