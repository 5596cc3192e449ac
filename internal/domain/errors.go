package domain

import "errors"

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrValidation         = errors.New("validation error")
	ErrUnknownTenant      = errors.New("unknown tenant")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
