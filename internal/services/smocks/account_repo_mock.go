package smocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avolkov/linkstats/internal/models"
)

type AccountRepoMock struct {
	mock.Mock
}

func (a *AccountRepoMock) Create(ctx context.Context, acc *models.Account) error {
	args := a.Called(ctx, acc)
	return args.Error(0) //nolint:wrapcheck,errcheck
}

func (a *AccountRepoMock) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	args := a.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Account), args.Error(1) //nolint:wrapcheck,errcheck
}

func (a *AccountRepoMock) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	args := a.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Account), args.Error(1) //nolint:wrapcheck,errcheck
}
