package worker

// recorrentes_cron.go
// Background goroutine that periodically enqueues one recurring-expense
// generation job per active account. The generation itself is idempotent,
// so overlapping ticks are harmless.

import (
	"context"
	"time"

	"acaimanager/internal/repository"

	"github.com/rs/zerolog/log"
)

const recorrentesTickInterval = 1 * time.Hour

// RecorrentesCronConfig holds all dependencies for the recurrence goroutine.
type RecorrentesCronConfig struct {
	UsuarioRepo repository.UsuarioRepository
	Dispatcher  *Dispatcher
}

// StartRecorrentesCron launches a background goroutine that ticks hourly and
// fans one job per active user into the despesas queue. It respects the
// context for graceful shutdown.
func StartRecorrentesCron(ctx context.Context, cfg RecorrentesCronConfig) {
	go func() {
		ticker := time.NewTicker(recorrentesTickInterval)
		defer ticker.Stop()

		log.Info().Msg("recorrentes_cron: started")

		// First pass right away so a restart near month boundary loses nothing.
		enqueueAll(ctx, cfg)

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("recorrentes_cron: shutting down")
				return
			case <-ticker.C:
				enqueueAll(ctx, cfg)
			}
		}
	}()
}

func enqueueAll(ctx context.Context, cfg RecorrentesCronConfig) {
	usuarios, err := cfg.UsuarioRepo.ListAtivos(ctx)
	if err != nil {
		log.Error().Err(err).Msg("recorrentes_cron: failed to list users")
		return
	}
	for _, u := range usuarios {
		payload := DespesasJobPayload{UserID: u.ID.String()}
		if err := cfg.Dispatcher.EnqueueDespesas(ctx, payload); err != nil {
			log.Error().Err(err).Str("user_id", u.ID.String()).Msg("recorrentes_cron: enqueue failed")
		}
	}
}
