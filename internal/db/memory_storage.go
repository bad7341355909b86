package db

import (
	"github.com/avolkov/linkstats/internal/db/memory"
)

// MemoryStorage группирует отдельные in-memory "таблицы" приложения.
type MemoryStorage struct {
	Accounts    *memory.MStorage
	Mappings    *memory.MStorage
	ClickEvents *memory.MStorage
}

func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{
		Accounts:    memory.NewMemStorage(),
		Mappings:    memory.NewMemStorage(),
		ClickEvents: memory.NewMemStorage(),
	}
}
