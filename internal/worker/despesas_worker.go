package worker

// despesas_worker.go
// Materializes the current month's instances of recurring expense templates.
// Generation is idempotent, so a job processed twice creates nothing extra.

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GeradorDespesas runs the recurring-expense generation; satisfied by the
// expense service.
type GeradorDespesas interface {
	GerarRecorrentes(ctx context.Context, userID uuid.UUID) (int, error)
}

type DespesasWorker struct {
	gerador GeradorDespesas
}

func NewDespesasWorker(gerador GeradorDespesas) *DespesasWorker {
	return &DespesasWorker{gerador: gerador}
}

func (w *DespesasWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload DespesasJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("despesas_worker: invalid payload")
		return
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		log.Error().Str("user_id", payload.UserID).Msg("despesas_worker: invalid user_id")
		return
	}

	criadas, err := w.gerador.GerarRecorrentes(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", payload.UserID).Msg("despesas_worker: generation failed")
		return
	}
	if criadas > 0 {
		log.Info().Str("user_id", payload.UserID).Int("criadas", criadas).Msg("despesas_worker: instances created")
	}
}
