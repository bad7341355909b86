package memstore

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov/linkstats/internal/db"
	"github.com/avolkov/linkstats/internal/db/memory"
	"github.com/avolkov/linkstats/internal/models"
)

// ClickEventRepo репозиторий событий переходов в памяти.
// Событие не имеет естественного ключа, поэтому ключом служит случайный uuid.
type ClickEventRepo struct {
	s *db.MemoryStorage
}

func NewClickEventRepo(store *db.MemoryStorage) *ClickEventRepo {
	return &ClickEventRepo{s: store}
}

func (c *ClickEventRepo) Create(ctx context.Context, event *models.ClickEvent) error {
	event.ID = c.s.ClickEvents.NextID()
	if err := memory.Set[models.ClickEvent](ctx, uuid.NewString(), event, c.s.ClickEvents); err != nil {
		return fmt.Errorf("failed to create click event: %w", convertErrorType(err))
	}
	return nil
}

// GetByMappingAndRange возвращает события одной ссылки за период.
// Обе границы включительно.
func (c *ClickEventRepo) GetByMappingAndRange(
	ctx context.Context,
	mappingID uint,
	start, end time.Time,
) ([]models.ClickEvent, error) {
	data, err := memory.FilterAll[models.ClickEvent](ctx, c.s.ClickEvents, func(val models.ClickEvent) bool {
		return val.MappingID == mappingID && !val.ClickedAt.Before(start) && !val.ClickedAt.After(end)
	})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get click events by mapping %d: %w",
			mappingID, convertErrorType(err),
		)
	}
	return data, nil
}

// GetByMappingsAndRange возвращает события по набору ссылок за полуоткрытый
// период [start, end).
func (c *ClickEventRepo) GetByMappingsAndRange(
	ctx context.Context,
	mappingIDs []uint,
	start, end time.Time,
) ([]models.ClickEvent, error) {
	data, err := memory.FilterAll[models.ClickEvent](ctx, c.s.ClickEvents, func(val models.ClickEvent) bool {
		return slices.Contains(mappingIDs, val.MappingID) &&
			!val.ClickedAt.Before(start) && val.ClickedAt.Before(end)
	})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get click events by mappings: %w",
			convertErrorType(err),
		)
	}
	return data, nil
}

func (c *ClickEventRepo) CountByMapping(ctx context.Context, mappingID uint) (int64, error) {
	data, err := memory.FilterAll[models.ClickEvent](ctx, c.s.ClickEvents, func(val models.ClickEvent) bool {
		return val.MappingID == mappingID
	})
	if err != nil {
		return 0, fmt.Errorf(
			"failed to count click events by mapping %d: %w",
			mappingID, convertErrorType(err),
		)
	}
	return int64(len(data)), nil
}
