package repositories

import "errors"

// Общая таксономия ошибок хранилищ. Конкретные реализации (sql, memstore)
// приводят свои ошибки к этим сентинелам.
var (
	ErrNotFound     = errors.New("[repository]: record not found")
	ErrDuplicateKey = errors.New("[repository]: duplicate key")
	ErrUnknown      = errors.New("[repository]: unknown error")
)
