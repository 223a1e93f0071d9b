package donation

import "github.com/iov-one/vault/errors"

// Vault lifecycle and contribution errors. Authorization, amount and
// balance failures use the framework errors: ErrUnauthorized, ErrAmount,
// ErrInsufficientAmount and ErrOverflow.
var (
	ErrAlreadyInitialized = errors.Register(1100, "vault already initialized")
	ErrNotInitialized     = errors.Register(1101, "vault not initialized")
	ErrPaused             = errors.Register(1102, "vault paused")
	ErrTooSmall           = errors.Register(1103, "amount below minimum")
	ErrTooLarge           = errors.Register(1104, "amount above maximum")
	ErrAlreadyPaused      = errors.Register(1105, "vault already paused")
	ErrNotPaused          = errors.Register(1106, "vault not paused")
)
