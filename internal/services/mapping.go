package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/repositories"
	"github.com/pkg/errors"
)

// maxGenerateAttempts предел попыток генерации кода при коллизиях.
// Пространство кодов 62^8, так что больше одной итерации цикл практически
// никогда не делает.
const maxGenerateAttempts = 10

// MappingService создание коротких ссылок и разрешение редиректов.
type MappingService struct {
	mappingRepo MappingRepository
	clickRepo   ClickEventRepository
	codeGen     *CodeGenerator
	logger      *zap.Logger
}

func NewMappingService(
	mappingRepo MappingRepository,
	clickRepo ClickEventRepository,
	codeGen *CodeGenerator,
	logger *zap.Logger,
) *MappingService {
	return &MappingService{
		mappingRepo: mappingRepo,
		clickRepo:   clickRepo,
		codeGen:     codeGen,
		logger:      logger.With(zap.String("module", "service/mapping")),
	}
}

// Create генерирует код и сохраняет новую ссылку владельца.
// Коллизию кода (нарушение уникального индекса при вставке) не проверяем
// заранее - просто генерируем новый код и пробуем еще раз.
func (s *MappingService) Create(ctx context.Context, originalURL string, owner *models.Account) (*models.Mapping, error) {
	for range maxGenerateAttempts {
		mapping := &models.Mapping{
			CreatedAt:   time.Now(),
			ShortCode:   s.codeGen.Generate(),
			OriginalURL: originalURL,
			AccountID:   owner.ID,
		}
		createErr := s.mappingRepo.Create(ctx, mapping)
		if createErr == nil {
			return mapping, nil
		}
		if errors.Is(createErr, repositories.ErrDuplicateKey) {
			continue
		}
		return nil, ErrUnknown
	}
	return nil, errors.Wrap(ErrUnknown, "generate short code attempts limit")
}

// GetAllByAccount возвращает все ссылки аккаунта. Порядок не определен.
func (s *MappingService) GetAllByAccount(ctx context.Context, accountID uint) ([]models.Mapping, error) {
	mappings, err := s.mappingRepo.GetAllByAccountID(ctx, accountID)
	if err != nil {
		return nil, ErrUnknown
	}
	return mappings, nil
}

// Resolve находит ссылку по коду и фиксирует переход: атомарный инкремент
// счетчика плюс одно событие в журнале. Запись статистики не должна ломать
// редирект - ошибки обеих записей логируются, а URL все равно возвращается.
func (s *MappingService) Resolve(ctx context.Context, shortCode string) (*models.Mapping, error) {
	mapping, err := s.mappingRepo.GetByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "short code %s not found", shortCode)
		}
		return nil, ErrUnknown
	}

	if incErr := s.mappingRepo.IncrementClickCount(ctx, mapping.ID); incErr != nil {
		s.logger.Error("failed to increment click count",
			zap.String("shortCode", shortCode), zap.Error(incErr))
	} else {
		mapping.ClickCount++
	}

	event := &models.ClickEvent{
		MappingID: mapping.ID,
		ClickedAt: time.Now(),
	}
	if evErr := s.clickRepo.Create(ctx, event); evErr != nil {
		s.logger.Error("failed to record click event",
			zap.String("shortCode", shortCode), zap.Error(evErr))
	}

	return mapping, nil
}
