// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the clients of the services PriceWise calls out to.
//
// [Classifier] sends a product's price history to the external prediction
// service over HTTP and returns its buy/wait label. [Mailer] renders and
// delivers user notifications through an SMTP relay.
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] without knowing the protocol underneath.
package adapter

import (
	"context"

	"github.com/Anish-A1/pricewise/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Classifier predicts whether now is a good time to buy given a price history.
type Classifier interface {
	// Predict returns one of the known [models.Prediction] labels. Any other
	// outcome, including an unknown label, is an error.
	Predict(ctx context.Context, samples []models.PriceSample) (models.Prediction, error)
}

// Mailer delivers user notifications.
type Mailer interface {
	// SendTrackingConfirmation tells the user that tracking has begun.
	SendTrackingConfirmation(ctx context.Context, msg models.TrackingConfirmation) error

	// SendPriceAlert tells the user that a tracked product reached the
	// tracking price.
	SendPriceAlert(ctx context.Context, msg models.PriceAlert) error
}
