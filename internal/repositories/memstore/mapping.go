package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/avolkov/linkstats/internal/db"
	"github.com/avolkov/linkstats/internal/db/memory"
	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/repositories"
)

// MappingRepo репозиторий коротких ссылок в памяти. Ключом служит короткий код,
// что дает бесплатную проверку уникальности при вставке.
type MappingRepo struct {
	s  *db.MemoryStorage
	mu sync.Mutex
}

func NewMappingRepo(store *db.MemoryStorage) *MappingRepo {
	return &MappingRepo{s: store}
}

func (m *MappingRepo) Create(ctx context.Context, mapping *models.Mapping) error {
	mapping.ID = m.s.Mappings.NextID()
	if err := memory.Set[models.Mapping](ctx, mapping.ShortCode, mapping, m.s.Mappings); err != nil {
		return fmt.Errorf("failed to create mapping: %w", convertErrorType(err))
	}
	return nil
}

func (m *MappingRepo) GetByShortCode(ctx context.Context, shortCode string) (*models.Mapping, error) {
	mapping, err := memory.Get[models.Mapping](ctx, shortCode, m.s.Mappings)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get mapping by short code %s: %w",
			shortCode, convertErrorType(err),
		)
	}
	return mapping, nil
}

func (m *MappingRepo) GetAllByAccountID(ctx context.Context, accountID uint) ([]models.Mapping, error) {
	data, err := memory.FilterAll[models.Mapping](ctx, m.s.Mappings, func(val models.Mapping) bool {
		return val.AccountID == accountID
	})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get mappings by account %d: %w",
			accountID, convertErrorType(err),
		)
	}
	return data, nil
}

// IncrementClickCount увеличивает счетчик переходов на единицу.
// Чтение и перезапись выполняются под мьютексом репозитория, поэтому
// конкурентные инкременты не теряются.
func (m *MappingRepo) IncrementClickCount(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := memory.FilterAll[models.Mapping](ctx, m.s.Mappings, func(val models.Mapping) bool {
		return val.ID == id
	})
	if err != nil {
		return convertErrorType(err)
	}
	if len(data) == 0 {
		return repositories.ErrNotFound
	}

	mapping := data[0]
	mapping.ClickCount++
	if setErr := memory.Set[models.Mapping](ctx, mapping.ShortCode, &mapping, m.s.Mappings, memory.WithOverwrite()); setErr != nil {
		return fmt.Errorf("failed to increment click count: %w", convertErrorType(setErr))
	}
	return nil
}
