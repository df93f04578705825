package repository

import (
	"context"
	"time"

	"pawmart/internal/domain/webhook"
)

type webhookLogRepository struct {
	db DBTX
}

func NewWebhookLogRepository(db DBTX) WebhookLogRepository {
	return &webhookLogRepository{db: db}
}

func (r *webhookLogRepository) exec(tx DBTX) DBTX {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *webhookLogRepository) InsertIfAbsent(ctx context.Context, tx DBTX, log *webhook.EventLog) (bool, error) {
	if log.ProcessedAt.IsZero() {
		log.ProcessedAt = time.Now()
	}
	res, err := r.exec(tx).ExecContext(ctx, `
        INSERT INTO webhook_logs (event_id, event_type, payload, processed_at)
        VALUES ($1,$2,$3,$4)
        ON CONFLICT (event_id) DO NOTHING
    `, log.EventID, log.EventType, log.Payload, log.ProcessedAt)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
