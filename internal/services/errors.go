package services

import "errors"

// Terminal error kinds surfaced to the caller. Handlers match them with
// errors.Is and map them to HTTP statuses; nothing is retried locally.
var (
	// ErrNotAuthenticated means no identity could be resolved where one is
	// required.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrAdminRequired means an identity was resolved but it does not carry
	// the admin role.
	ErrAdminRequired = errors.New("admin access required")
	// ErrAccessDenied covers both a missing cart item and one owned by a
	// different user, so callers cannot probe for existence.
	ErrAccessDenied = errors.New("cart item not found or access denied")
	// ErrProductNotFound means the referenced product is missing or inactive.
	ErrProductNotFound = errors.New("product not found or not active")
	// ErrInvalidQuantity rejects non-positive cart quantities.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
)
