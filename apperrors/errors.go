package apperrors

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("duplicate record")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyOrder        = errors.New("order has no lines")

	ErrAlreadyPaid           = errors.New("order already paid")
	ErrNotFoundOrAlreadyPaid = errors.New("no unpaid order with that pos number")

	ErrAccountCreationFailed = errors.New("account creation failed")
	ErrPartialProvisioning   = errors.New("provisioning failed, changes rolled back")

	ErrUnauthorized  = errors.New("authentication required")
	ErrForbidden     = errors.New("insufficient role for this action")
	ErrTenantBlocked = errors.New("hotel account is blocked")
)
