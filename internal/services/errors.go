package services

import "errors"

var (
	ErrUnknown            = errors.New("[service]: unknown error")
	ErrRecordNotFound     = errors.New("[service]: record not found")
	ErrDuplicateKey       = errors.New("[service]: duplicate key")
	ErrUsernameTaken      = errors.New("[service]: username already taken")
	ErrEmailTaken         = errors.New("[service]: email already taken")
	ErrInvalidCredentials = errors.New("[service]: invalid credentials")
)
