package services

import (
	"context"
	"time"

	"github.com/avolkov/linkstats/internal/models"
)

// AccountRepository описывает репозиторий аккаунтов.
type AccountRepository interface {
	// Create создает запись аккаунта. Нарушение уникальности username/email
	// возвращается как repositories.ErrDuplicateKey.
	Create(ctx context.Context, acc *models.Account) error
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

// MappingRepository описывает репозиторий коротких ссылок.
type MappingRepository interface {
	// Create создает запись ссылки. Коллизия короткого кода возвращается
	// как repositories.ErrDuplicateKey.
	Create(ctx context.Context, mapping *models.Mapping) error
	GetByShortCode(ctx context.Context, shortCode string) (*models.Mapping, error)
	// GetAllByAccountID возвращает все ссылки аккаунта. Порядок не определен.
	GetAllByAccountID(ctx context.Context, accountID uint) ([]models.Mapping, error)
	// IncrementClickCount атомарно увеличивает счетчик переходов на единицу.
	IncrementClickCount(ctx context.Context, id uint) error
}

// ClickEventRepository описывает журнал событий переходов. Только вставка и чтение.
type ClickEventRepository interface {
	Create(ctx context.Context, event *models.ClickEvent) error
	// GetByMappingAndRange события одной ссылки, границы включительно.
	GetByMappingAndRange(ctx context.Context, mappingID uint, start, end time.Time) ([]models.ClickEvent, error)
	// GetByMappingsAndRange события набора ссылок, период полуоткрытый [start, end).
	GetByMappingsAndRange(ctx context.Context, mappingIDs []uint, start, end time.Time) ([]models.ClickEvent, error)
	CountByMapping(ctx context.Context, mappingID uint) (int64, error)
}
