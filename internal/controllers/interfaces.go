package controllers

import (
	"context"
	"time"

	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/services"
)

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// AccountStore операции над аккаунтами, нужные контроллерам.
type AccountStore interface {
	Register(ctx context.Context, username, email, password string) (*models.Account, error)
	Authenticate(ctx context.Context, username, password string) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}

// MappingStore операции над короткими ссылками.
type MappingStore interface {
	Create(ctx context.Context, originalURL string, owner *models.Account) (*models.Mapping, error)
	GetAllByAccount(ctx context.Context, accountID uint) ([]models.Mapping, error)
	// Resolve возвращает ссылку по коду и фиксирует переход.
	Resolve(ctx context.Context, shortCode string) (*models.Mapping, error)
}

// AnalyticsStore выборки статистики переходов.
type AnalyticsStore interface {
	ClicksByCode(ctx context.Context, shortCode string, start, end time.Time) ([]services.ClickStats, error)
	TotalClicksByAccount(ctx context.Context, accountID uint, start, end time.Time) (map[string]int64, error)
}
