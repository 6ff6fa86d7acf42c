package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidPrice        = errors.New("track price must be a finite number")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrTokenCreationFailed                   = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid               = errors.New("token is expired or invalid")
	ErrUnauthorizedAccessToDifferentUserData = errors.New("credential does not belong to the requested user")

	ErrNotificationFailed    = errors.New("failed to send notification")
	ErrPredictionUnavailable = errors.New("prediction is unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
