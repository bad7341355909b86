package sql

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avolkov/linkstats/internal/models"
)

type ClickEventRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewClickEventRepo(db *gorm.DB, logger *zap.Logger) *ClickEventRepo {
	return &ClickEventRepo{
		db:     db,
		logger: logger.With(zap.String("module", "repository/sql/click_event")),
	}
}

func (c *ClickEventRepo) Create(ctx context.Context, event *models.ClickEvent) error {
	if err := c.db.WithContext(ctx).Create(event).Error; err != nil {
		c.logger.Error("failed to create click event", zap.Uint("mappingID", event.MappingID), zap.Error(err))
		return convertErrorType(err)
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
	var events []models.ClickEvent
	err := c.db.WithContext(ctx).
		Where("mapping_id = ? AND clicked_at >= ? AND clicked_at <= ?", mappingID, start, end).
		Find(&events).Error
	if err != nil {
		c.logger.Error("failed to get click events by mapping", zap.Uint("mappingID", mappingID), zap.Error(err))
		return nil, convertErrorType(err)
	}
	return events, nil
}

// GetByMappingsAndRange возвращает события по набору ссылок за полуоткрытый
// период [start, end).
func (c *ClickEventRepo) GetByMappingsAndRange(
	ctx context.Context,
	mappingIDs []uint,
	start, end time.Time,
) ([]models.ClickEvent, error) {
	if len(mappingIDs) == 0 {
		return []models.ClickEvent{}, nil
	}
	var events []models.ClickEvent
	err := c.db.WithContext(ctx).
		Where("mapping_id IN ? AND clicked_at >= ? AND clicked_at < ?", mappingIDs, start, end).
		Find(&events).Error
	if err != nil {
		c.logger.Error("failed to get click events by mappings", zap.Int("mappings", len(mappingIDs)), zap.Error(err))
		return nil, convertErrorType(err)
	}
	return events, nil
}

func (c *ClickEventRepo) CountByMapping(ctx context.Context, mappingID uint) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Model(&models.ClickEvent{}).
		Where("mapping_id = ?", mappingID).
		Count(&count).Error
	if err != nil {
		c.logger.Error("failed to count click events", zap.Uint("mappingID", mappingID), zap.Error(err))
		return 0, convertErrorType(err)
	}
	return count, nil
}
