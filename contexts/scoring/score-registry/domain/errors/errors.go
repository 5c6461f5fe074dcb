package errors

import "errors"

var (
	ErrUnauthorized       = errors.New("caller is not the registry owner")
	ErrUninitialized      = errors.New("registry has not been instantiated")
	ErrAlreadyInitialized = errors.New("registry is already instantiated")
	ErrInvalidIdentity    = errors.New("identity is missing or invalid")
	ErrInvalidListQuery   = errors.New("list pagination is invalid")
)
