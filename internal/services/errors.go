package services

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidOrder       = errors.New("invalid order")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductExists      = errors.New("product slug or sku already in use")
	ErrDuplicateReview    = errors.New("product already reviewed by this user")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid refresh token")
	ErrUserExists         = errors.New("username or email already taken")
	ErrInvalidRole        = errors.New("invalid role")
)
