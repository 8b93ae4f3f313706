package worker

// relatorio_worker.go
// Renders the monthly closing report as PDF and mails it to the merchant.
// The report dataset is rebuilt at processing time so a job that sat in the
// queue still ships current numbers.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"acaimanager/internal/dto"
	"acaimanager/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxRelatorioAttempts = 3

// RelatorioFonte produces the report dataset; satisfied by the closing service.
type RelatorioFonte interface {
	DadosRelatorio(ctx context.Context, userID uuid.UUID, mes, ano int) (*dto.RelatorioFechamento, error)
}

type RelatorioWorker struct {
	fonte          RelatorioFonte
	mailer         *infra.Mailer
	rdb            *redis.Client
	pdfStoragePath string
}

func NewRelatorioWorker(fonte RelatorioFonte, mailer *infra.Mailer, rdb *redis.Client, pdfStoragePath string) *RelatorioWorker {
	return &RelatorioWorker{fonte: fonte, mailer: mailer, rdb: rdb, pdfStoragePath: pdfStoragePath}
}

// Process handles a single report job: rebuild dataset, render PDF, send mail.
// Transient failures retry with backoff; exhausted jobs land in the DLQ.
func (w *RelatorioWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload RelatorioJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("relatorio_worker: invalid payload")
		return
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		log.Error().Str("user_id", payload.UserID).Msg("relatorio_worker: invalid user_id")
		return
	}

	dados, err := w.fonte.DadosRelatorio(ctx, userID, payload.Mes, payload.Ano)
	if err != nil {
		log.Error().Err(err).Str("user_id", payload.UserID).Msg("relatorio_worker: failed to build report data")
		return
	}

	pdfPath, err := infra.GerarRelatorioPDF(dados, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Str("user_id", payload.UserID).Msg("relatorio_worker: PDF generation failed")
		return
	}

	subject := fmt.Sprintf("Fechamento %02d/%d — %s", payload.Mes, payload.Ano, dados.NomeLoja)
	body := fmt.Sprintf(
		"Segue em anexo o relatório de fechamento de %02d/%d.\nFaturamento: R$ %s\nStatus MEI: %s",
		payload.Mes, payload.Ano, dados.Faturamento.StringFixed(2), dados.MeiStatus,
	)

	mailErr := withRetry(ctx, maxRelatorioAttempts, func(attempt int) error {
		if err := w.mailer.SendRelatorio(payload.Email, subject, body, pdfPath); err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("email", payload.Email).
				Msg("relatorio_worker: send attempt failed, retrying")
			return err
		}
		return nil
	})
	if mailErr != nil {
		log.Error().Err(mailErr).Str("email", payload.Email).Msg("relatorio_worker: send failed after all retries")
		if w.rdb != nil {
			SendToDLQ(ctx, w.rdb, QueueRelatorios, "relatorio", raw, mailErr.Error(), maxRelatorioAttempts)
		}
		return
	}

	log.Info().
		Str("email", payload.Email).
		Str("pdf", pdfPath).
		Msg("relatorio_worker: report delivered")
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
