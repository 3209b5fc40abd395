package domain

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrCacheMiss       = errors.New("cache slot is empty")
	ErrEmptyToken      = errors.New("token is empty")
	ErrNoDeviceCode    = errors.New("no device code to poll")
	ErrDeviceExpired   = errors.New("device authorization expired")

	// ErrQuotaPermission marks a token that authenticates but cannot
	// access the usage API. Callers replace it with guidance about the
	// required credential scope.
	ErrQuotaPermission = errors.New("token cannot access the usage API")
)
