package workers

import (
	"context"

	"github.com/Anish-A1/pricewise/internal/adapter"
	"github.com/Anish-A1/pricewise/internal/config"
	"github.com/Anish-A1/pricewise/internal/logger"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewWorkers builds the workers enabled by cfg.
func NewWorkers(cfg config.Workers, alerts AlertSource, mailer adapter.Mailer, logger *logger.Logger) *Workers {
	if cfg.AlertDisabled || cfg.AlertInterval <= 0 {
		logger.Info().Msg("price alert worker disabled")
		return New()
	}

	return New(NewPriceAlertWorker(alerts, mailer, cfg.AlertInterval, logger))
}

// Len reports the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and waits for all of them. The first failure
// cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
