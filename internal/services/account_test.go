package services

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/repositories"
	"github.com/avolkov/linkstats/internal/services/smocks"
)

type AccountServiceSuite struct {
	suite.Suite
	repo    *smocks.AccountRepoMock
	service *AccountService
}

func (s *AccountServiceSuite) SetupTest() {
	s.repo = new(smocks.AccountRepoMock)
	s.service = NewAccountService(s.repo, zap.NewNop())
}

func (s *AccountServiceSuite) TestRegister() {
	username := gofakeit.Username()
	email := gofakeit.Email()
	password := gofakeit.Password(true, true, true, false, false, 12)

	s.repo.On("GetByUsername", mock.Anything, username).Return(nil, repositories.ErrNotFound)
	s.repo.On("GetByEmail", mock.Anything, email).Return(nil, repositories.ErrNotFound)
	s.repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Account")).Return(nil)

	acc, err := s.service.Register(context.Background(), username, email, password)
	s.Require().NoError(err)

	s.Equal(username, acc.Username)
	s.Equal(email, acc.Email)
	s.Equal(models.RoleUser, acc.Role)
	s.NotEqual(password, acc.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)))
}

func (s *AccountServiceSuite) TestRegister_UsernameTaken() {
	username := gofakeit.Username()

	s.repo.On("GetByUsername", mock.Anything, username).
		Return(&models.Account{Username: username}, nil)

	_, err := s.service.Register(context.Background(), username, gofakeit.Email(), "password")
	s.Require().ErrorIs(err, ErrUsernameTaken)
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *AccountServiceSuite) TestRegister_EmailTaken() {
	username := gofakeit.Username()
	email := gofakeit.Email()

	s.repo.On("GetByUsername", mock.Anything, username).Return(nil, repositories.ErrNotFound)
	s.repo.On("GetByEmail", mock.Anything, email).
		Return(&models.Account{Email: email}, nil)

	_, err := s.service.Register(context.Background(), username, email, "password")
	s.Require().ErrorIs(err, ErrEmailTaken)
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

// TestRegister_RaceDuplicate гонка двух одновременных регистраций: проверки
// прошли, а вставка уперлась в уникальный индекс.
func (s *AccountServiceSuite) TestRegister_RaceDuplicate() {
	username := gofakeit.Username()
	email := gofakeit.Email()

	s.repo.On("GetByUsername", mock.Anything, username).Return(nil, repositories.ErrNotFound)
	s.repo.On("GetByEmail", mock.Anything, email).Return(nil, repositories.ErrNotFound)
	s.repo.On("Create", mock.Anything, mock.Anything).Return(repositories.ErrDuplicateKey)

	_, err := s.service.Register(context.Background(), username, email, "password")
	s.Require().ErrorIs(err, ErrDuplicateKey)
}

func (s *AccountServiceSuite) TestAuthenticate() {
	username := gofakeit.Username()
	password := gofakeit.Password(true, true, true, false, false, 12)
	hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(hashErr)

	stored := &models.Account{Username: username, PasswordHash: string(hash)}
	s.repo.On("GetByUsername", mock.Anything, username).Return(stored, nil)

	acc, err := s.service.Authenticate(context.Background(), username, password)
	s.Require().NoError(err)
	s.Equal(username, acc.Username)

	_, wrongErr := s.service.Authenticate(context.Background(), username, "not-the-password")
	s.Require().ErrorIs(wrongErr, ErrInvalidCredentials)
}

// TestAuthenticate_UnknownUser неизвестный пользователь и неверный пароль
// дают одну и ту же ошибку.
func (s *AccountServiceSuite) TestAuthenticate_UnknownUser() {
	s.repo.On("GetByUsername", mock.Anything, mock.Anything).Return(nil, repositories.ErrNotFound)

	_, err := s.service.Authenticate(context.Background(), gofakeit.Username(), "password")
	s.Require().ErrorIs(err, ErrInvalidCredentials)
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}
