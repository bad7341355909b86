package sql

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/repositories"
	"github.com/pkg/errors"
)

type MappingRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewMappingRepo(db *gorm.DB, logger *zap.Logger) *MappingRepo {
	return &MappingRepo{
		db:     db,
		logger: logger.With(zap.String("module", "repository/sql/mapping")),
	}
}

func (m *MappingRepo) Create(ctx context.Context, mapping *models.Mapping) error {
	if err := m.db.WithContext(ctx).Create(mapping).Error; err != nil {
		convErr := convertErrorType(err)
		if errors.Is(convErr, repositories.ErrUnknown) {
			m.logger.Error("failed to create mapping", zap.String("shortCode", mapping.ShortCode), zap.Error(err))
		}
		return convErr
	}
	return nil
}

func (m *MappingRepo) GetByShortCode(ctx context.Context, shortCode string) (*models.Mapping, error) {
	var mapping models.Mapping
	if err := m.db.WithContext(ctx).Where("short_code = ?", shortCode).First(&mapping).Error; err != nil {
		convErr := convertErrorType(err)
		if errors.Is(convErr, repositories.ErrUnknown) {
			m.logger.Error("failed to get mapping by short code", zap.String("shortCode", shortCode), zap.Error(err))
		}
		return nil, convErr
	}
	return &mapping, nil
}

func (m *MappingRepo) GetAllByAccountID(ctx context.Context, accountID uint) ([]models.Mapping, error) {
	var mappings []models.Mapping
	if err := m.db.WithContext(ctx).Where("account_id = ?", accountID).Find(&mappings).Error; err != nil {
		m.logger.Error("failed to get mappings by account", zap.Uint("accountID", accountID), zap.Error(err))
		return nil, convertErrorType(err)
	}
	return mappings, nil
}

// IncrementClickCount атомарно увеличивает счетчик переходов на единицу.
// Инкремент выполняется на стороне БД: read-modify-write здесь недопустим,
// конкурентные редиректы по одному коду потеряют обновления.
func (m *MappingRepo) IncrementClickCount(ctx context.Context, id uint) error {
	res := m.db.WithContext(ctx).
		Model(&models.Mapping{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1))
	if res.Error != nil {
		m.logger.Error("failed to increment click count", zap.Uint("mappingID", id), zap.Error(res.Error))
		return convertErrorType(res.Error)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
