package smocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/avolkov/linkstats/internal/models"
)

type ClickEventRepoMock struct {
	mock.Mock
}

func (c *ClickEventRepoMock) Create(ctx context.Context, event *models.ClickEvent) error {
	args := c.Called(ctx, event)
	return args.Error(0) //nolint:wrapcheck,errcheck
}

func (c *ClickEventRepoMock) GetByMappingAndRange(
	ctx context.Context,
	mappingID uint,
	start, end time.Time,
) ([]models.ClickEvent, error) {
	args := c.Called(ctx, mappingID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.ClickEvent), args.Error(1) //nolint:wrapcheck,errcheck
}

func (c *ClickEventRepoMock) GetByMappingsAndRange(
	ctx context.Context,
	mappingIDs []uint,
	start, end time.Time,
) ([]models.ClickEvent, error) {
	args := c.Called(ctx, mappingIDs, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.ClickEvent), args.Error(1) //nolint:wrapcheck,errcheck
}

func (c *ClickEventRepoMock) CountByMapping(ctx context.Context, mappingID uint) (int64, error) {
	args := c.Called(ctx, mappingID)
	return args.Get(0).(int64), args.Error(1) //nolint:wrapcheck,errcheck
}
