package services

import "errors"

// Error kinds the controllers classify into HTTP statuses. Anything else
// surfaces as a 500.
var (
	ErrNotFound             = errors.New("not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrProductUnavailable   = errors.New("product is unavailable")
	ErrBasketFinalized      = errors.New("basket has already been accepted or rejected")
	ErrExternalUserNotFound = errors.New("external user not found")
	ErrExternalUserSeeded   = errors.New("external user already seeded")
)
