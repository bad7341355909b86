// Package sql предоставляет реализацию репозиториев поверх gorm
// (PostgreSQL и SQLite, выбор диалекта происходит на уровне подключения).
//
// Все методы репозиториев преобразуют ошибки gorm в общие ошибки уровня
// репозитория с помощью convertErrorType:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
