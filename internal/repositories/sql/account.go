package sql

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/repositories"
	"github.com/pkg/errors"
)

type AccountRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewAccountRepo(db *gorm.DB, logger *zap.Logger) *AccountRepo {
	return &AccountRepo{
		db:     db,
		logger: logger.With(zap.String("module", "repository/sql/account")),
	}
}

func (a *AccountRepo) Create(ctx context.Context, acc *models.Account) error {
	if err := a.db.WithContext(ctx).Create(acc).Error; err != nil {
		convErr := convertErrorType(err)
		if errors.Is(convErr, repositories.ErrUnknown) {
			a.logger.Error("failed to create account", zap.String("username", acc.Username), zap.Error(err))
		}
		return convErr
	}
	return nil
}

func (a *AccountRepo) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	var acc models.Account
	if err := a.db.WithContext(ctx).Where("username = ?", username).First(&acc).Error; err != nil {
		convErr := convertErrorType(err)
		if errors.Is(convErr, repositories.ErrUnknown) {
			a.logger.Error("failed to get account by username", zap.String("username", username), zap.Error(err))
		}
		return nil, convErr
	}
	return &acc, nil
}

func (a *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var acc models.Account
	if err := a.db.WithContext(ctx).Where("email = ?", email).First(&acc).Error; err != nil {
		convErr := convertErrorType(err)
		if errors.Is(convErr, repositories.ErrUnknown) {
			a.logger.Error("failed to get account by email", zap.String("email", email), zap.Error(err))
		}
		return nil, convErr
	}
	return &acc, nil
}
