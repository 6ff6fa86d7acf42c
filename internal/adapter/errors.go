package adapter

import "errors"

var (
	ErrNoSamples             = errors.New("no price samples to classify")
	ErrClassifierUnavailable = errors.New("classifier unavailable")
	ErrClassifierRejected    = errors.New("classifier rejected the request")
	ErrUnknownPrediction     = errors.New("classifier returned an unknown label")

	ErrInvalidRecipient = errors.New("invalid mail recipient")
	ErrMailDelivery     = errors.New("mail delivery failed")
)
