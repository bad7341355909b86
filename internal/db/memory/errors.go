package memory

import "errors"

// ErrNotFound ключ отсутствует в хранилище.
// ErrDuplicateKey ключ уже занят и перезапись не разрешена.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)
