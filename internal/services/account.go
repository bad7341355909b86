package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/repositories"
	"github.com/pkg/errors"
)

// AccountService регистрация и проверка учетных данных аккаунтов.
type AccountService struct {
	accountRepo AccountRepository
	logger      *zap.Logger
}

func NewAccountService(accountRepo AccountRepository, logger *zap.Logger) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger.With(zap.String("module", "service/account")),
	}
}

// Register создает новый аккаунт. Уникальность username и email проверяется
// до записи; дубликат возвращается как ErrUsernameTaken/ErrEmailTaken.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*models.Account, error) {
	if _, err := s.accountRepo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUnknown
	}

	if _, err := s.accountRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUnknown
	}

	hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if hashErr != nil {
		s.logger.Error("failed to hash password", zap.Error(hashErr))
		return nil, ErrUnknown
	}

	acc := &models.Account{
		CreatedAt:    time.Now(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	if createErr := s.accountRepo.Create(ctx, acc); createErr != nil {
		// Гонка двух одновременных регистраций: проверка выше прошла, но
		// вставка уперлась в уникальный индекс.
		if errors.Is(createErr, repositories.ErrDuplicateKey) {
			return nil, ErrDuplicateKey
		}
		return nil, ErrUnknown
	}
	return acc, nil
}

// Authenticate проверяет пару username/password. Неизвестный пользователь и
// неверный пароль неразличимы для вызывающего - оба дают ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.Account, error) {
	acc, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.logger.Info("login attempt for unknown username", zap.String("username", username))
			return nil, ErrInvalidCredentials
		}
		return nil, ErrUnknown
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); cmpErr != nil {
		s.logger.Info("login attempt with wrong password", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	return acc, nil
}

// GetByUsername находит аккаунт по имени пользователя.
func (s *AccountService) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	acc, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "username %s not found", username)
		}
		return nil, ErrUnknown
	}
	return acc, nil
}
