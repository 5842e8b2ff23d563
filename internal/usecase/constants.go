package usecase

import "time"

const (
	// DefaultTransactionTimeout bounds a single document mutation so a stuck
	// transaction cannot hold the account row lock indefinitely.
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long cached idempotent responses live.
	IdempotencyKeyTTL = 24 * time.Hour
)
