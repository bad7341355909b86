package smocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avolkov/linkstats/internal/models"
)

type MappingRepoMock struct {
	mock.Mock
}

func (m *MappingRepoMock) Create(ctx context.Context, mapping *models.Mapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0) //nolint:wrapcheck,errcheck
}

func (m *MappingRepoMock) GetByShortCode(ctx context.Context, shortCode string) (*models.Mapping, error) {
	args := m.Called(ctx, shortCode)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Mapping), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *MappingRepoMock) GetAllByAccountID(ctx context.Context, accountID uint) ([]models.Mapping, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.Mapping), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *MappingRepoMock) IncrementClickCount(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0) //nolint:wrapcheck,errcheck
}
