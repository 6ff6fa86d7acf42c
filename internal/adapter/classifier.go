package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/Anish-A1/pricewise/internal/config"
	"github.com/Anish-A1/pricewise/internal/logger"
	"github.com/Anish-A1/pricewise/internal/utils"
	"github.com/Anish-A1/pricewise/models"
)

type predictionRequest struct {
	PriceVariations []models.PriceSample `json:"priceVariations"`
}

type predictionResponse struct {
	PredictionType string `json:"predictionType"`
	Error          string `json:"error"`
}

type httpClassifier struct {
	client   *utils.HTTPClient
	endpoint string

	logger *logger.Logger
}

// NewHTTPClassifier constructs a [Classifier] that POSTs price histories to
// cfg.URL. A URL without a scheme is treated as plain http.
func NewHTTPClassifier(cfg config.Classifier, logger *logger.Logger) (Classifier, error) {
	endpoint, err := normalizeURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid classifier url: %w", err)
	}

	return &httpClassifier{
		client:   utils.NewHTTPClient("", cfg.Timeout),
		endpoint: endpoint,
		logger:   logger,
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpClassifier) Predict(ctx context.Context, samples []models.PriceSample) (models.Prediction, error) {
	log := logger.FromContext(ctx).With().Str("func", "*httpClassifier.Predict").Logger()

	if len(samples) == 0 {
		return "", ErrNoSamples
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(predictionRequest{PriceVariations: samples}).
		Post(c.endpoint)
	if err != nil {
		log.Err(err).Msg("classifier request failed")
		return "", fmt.Errorf("%w: %w", ErrClassifierUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Msg("classifier returned an error status")
		return "", err
	}

	var out predictionResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		log.Err(err).Msg("error decoding classifier response")
		return "", fmt.Errorf("%w: decode response: %w", ErrClassifierUnavailable, err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrClassifierRejected, out.Error)
	}

	prediction := models.Prediction(out.PredictionType)
	if !prediction.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPrediction, out.PredictionType)
	}

	log.Debug().Str("prediction", string(prediction)).Int("samples", len(samples)).Msg("classified price history")
	return prediction, nil
}
