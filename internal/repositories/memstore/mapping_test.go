package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/linkstats/internal/db"
	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/repositories"
)

func TestMappingRepo_Create_DuplicateShortCode(t *testing.T) {
	repo := NewMappingRepo(db.NewMemStorage())
	ctx := context.Background()

	first := &models.Mapping{ShortCode: "abcdefgh", OriginalURL: "https://example.com/1", AccountID: 1}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)

	second := &models.Mapping{ShortCode: "abcdefgh", OriginalURL: "https://example.com/2", AccountID: 1}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
}

func TestMappingRepo_GetByShortCode_NotFound(t *testing.T) {
	repo := NewMappingRepo(db.NewMemStorage())

	_, err := repo.GetByShortCode(context.Background(), "nosuchxx")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMappingRepo_IncrementClickCount(t *testing.T) {
	repo := NewMappingRepo(db.NewMemStorage())
	ctx := context.Background()

	mapping := &models.Mapping{ShortCode: "abcdefgh", OriginalURL: "https://example.com", AccountID: 1}
	require.NoError(t, repo.Create(ctx, mapping))

	require.NoError(t, repo.IncrementClickCount(ctx, mapping.ID))
	require.NoError(t, repo.IncrementClickCount(ctx, mapping.ID))

	stored, err := repo.GetByShortCode(ctx, mapping.ShortCode)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stored.ClickCount)

	assert.ErrorIs(t, repo.IncrementClickCount(ctx, 999), repositories.ErrNotFound)
}
