package memstore

import (
	"context"
	"fmt"

	"github.com/avolkov/linkstats/internal/db"
	"github.com/avolkov/linkstats/internal/db/memory"
	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/repositories"
)

// AccountRepo репозиторий аккаунтов в памяти. Записи хранятся по ключу username,
// уникальность email проверяется полным перебором (для in-memory варианта этого достаточно).
type AccountRepo struct {
	s *db.MemoryStorage
}

func NewAccountRepo(store *db.MemoryStorage) *AccountRepo {
	return &AccountRepo{s: store}
}

func (a *AccountRepo) Create(ctx context.Context, acc *models.Account) error {
	existing, err := a.GetByEmail(ctx, acc.Email)
	if err == nil && existing != nil {
		return repositories.ErrDuplicateKey
	}

	acc.ID = a.s.Accounts.NextID()
	if setErr := memory.Set[models.Account](ctx, acc.Username, acc, a.s.Accounts); setErr != nil {
		return fmt.Errorf("failed to create account: %w", convertErrorType(setErr))
	}
	return nil
}

func (a *AccountRepo) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	acc, err := memory.Get[models.Account](ctx, username, a.s.Accounts)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get account by username %s: %w",
			username, convertErrorType(err),
		)
	}
	return acc, nil
}

func (a *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	data, err := memory.FilterAll[models.Account](ctx, a.s.Accounts, func(val models.Account) bool {
		return val.Email == email
	})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get account by email %s: %w",
			email, convertErrorType(err),
		)
	}
	if len(data) == 0 {
		return nil, repositories.ErrNotFound
	}
	return &data[0], nil
}
