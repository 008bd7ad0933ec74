package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Pending payment errors
	ErrSessionNotFound  = errors.New("pending payment session not found")
	ErrAlreadyProcessed = errors.New("pending payment already processed")

	// Short URL errors
	ErrAliasTaken         = errors.New("custom alias already taken")
	ErrShortCodeExhausted = errors.New("short code allocation retries exhausted")
	ErrURLNotFound        = errors.New("url not found")

	// Gateway errors
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrGatewayFailure   = errors.New("payment gateway request failed")
)
