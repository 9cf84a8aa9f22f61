package entities

import "errors"

var (
	ErrSupplierNotFound       = errors.New("supplier not found")
	ErrAuthenticationRequired = errors.New("authentication required")
)
