// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Anish-A1/pricewise/internal/config"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// funcWorker adapts a function to the Worker interface.
type funcWorker func(ctx context.Context) error

func (f funcWorker) Run(ctx context.Context) error {
	return f(ctx)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	var calls atomic.Int32
	w := funcWorker(func(context.Context) error {
		calls.Add(1)
		return nil
	})

	ws := &Workers{workers: []Worker{w, w, w}}

	require.NoError(t, ws.Run(context.Background()))
	assert.EqualValues(t, 3, calls.Load())
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

// TestWorkers_Run_FailureCancelsOthers verifies that one failing worker
// stops the rest.
func TestWorkers_Run_FailureCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocking := funcWorker(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
	failing := funcWorker(func(context.Context) error { return boom })

	done := make(chan error, 1)
	go func() { done <- (&Workers{workers: []Worker{blocking, failing}}).Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mock.NewMockMailer(ctrl)

	tests := []struct {
		name string
		cfg  config.Workers
		want int
	}{
		{"enabled", config.Workers{AlertInterval: time.Minute}, 1},
		{"disabled flag", config.Workers{AlertInterval: time.Minute, AlertDisabled: true}, 0},
		{"zero interval", config.Workers{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := NewWorkers(tt.cfg, &fakeAlertSource{}, mailer, logger.Nop())
			assert.Equal(t, tt.want, ws.Len())
		})
	}
}
