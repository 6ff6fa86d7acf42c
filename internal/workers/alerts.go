package workers

import (
	"context"
	"time"

	"github.com/Anish-A1/pricewise/internal/adapter"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/models"
)

// alertBatchSize bounds the number of alerts sent per tick.
const alertBatchSize = 100

// PriceAlertWorker periodically emails users whose tracked product dropped
// below their target price. Each entry is alerted once per target
// price; failed sends are retried on the next tick.
type PriceAlertWorker struct {
	alerts   AlertSource
	mailer   adapter.Mailer
	interval time.Duration

	now func() time.Time

	logger *logger.Logger
}

func NewPriceAlertWorker(alerts AlertSource, mailer adapter.Mailer, interval time.Duration, logger *logger.Logger) *PriceAlertWorker {
	return &PriceAlertWorker{
		alerts:   alerts,
		mailer:   mailer,
		interval: interval,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}
}

func (w *PriceAlertWorker) Run(ctx context.Context) error {
	log := w.logger.With().Str("worker", "price_alert").Logger()
	log.Info().Dur("interval", w.interval).Msg("worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("worker stopped")
			return nil
		case <-ticker.C:
			sent, err := w.scan(ctx)
			if err != nil {
				log.Err(err).Msg("price alert scan failed")
				continue
			}
			if sent > 0 {
				log.Info().Int("sent", sent).Msg("price alerts sent")
			}
		}
	}
}

// scan sends the currently due alerts and returns how many were delivered.
func (w *PriceAlertWorker) scan(ctx context.Context) (int, error) {
	candidates, err := w.alerts.DueAlerts(ctx, alertBatchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, c := range candidates {
		if ctx.Err() != nil {
			return sent, nil
		}
		if !c.Due() {
			continue
		}

		err = w.mailer.SendPriceAlert(ctx, models.PriceAlert{
			To:           c.Email,
			Name:         c.Name,
			ProductName:  c.ProductName,
			ProductURL:   c.ProductURL,
			CurrentPrice: c.CurrentPrice,
			TrackPrice:   c.TrackPrice,
		})
		if err != nil {
			w.logger.Err(err).Str("user_id", c.UserID).Str("product_id", c.ProductID).Msg("price alert was not sent")
			continue
		}

		// a failed mark means the alert is sent again next tick
		if err = w.alerts.MarkNotified(ctx, c.UserID, c.ProductID, w.now()); err != nil {
			w.logger.Err(err).Str("user_id", c.UserID).Str("product_id", c.ProductID).Msg("error marking alert as sent")
		}
		sent++
	}

	return sent, nil
}
