package services

import (
	"context"
	"sort"
	"time"

	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/repositories"
	"github.com/pkg/errors"
)

// ClickDateLayout формат даты в результатах аналитики.
const ClickDateLayout = "2006-01-02"

// ClickStats количество переходов за один календарный день.
type ClickStats struct {
	ClickDate string `json:"clickDate"`
	Count     int64  `json:"count"`
}

// AnalyticsService агрегация журнала переходов по календарным дням.
// Методы только читают, никаких побочных эффектов.
type AnalyticsService struct {
	mappingRepo MappingRepository
	clickRepo   ClickEventRepository
}

func NewAnalyticsService(mappingRepo MappingRepository, clickRepo ClickEventRepository) *AnalyticsService {
	return &AnalyticsService{
		mappingRepo: mappingRepo,
		clickRepo:   clickRepo,
	}
}

// ClicksByCode считает переходы по одной ссылке за период [start, end]
// (обе границы включительно), сгруппированные по дате события.
// Дни без переходов в результат не попадают. Неизвестный код дает пустой
// срез, а не ошибку. Результат отсортирован по дате.
func (s *AnalyticsService) ClicksByCode(
	ctx context.Context,
	shortCode string,
	start, end time.Time,
) ([]ClickStats, error) {
	mapping, err := s.mappingRepo.GetByShortCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return []ClickStats{}, nil
		}
		return nil, ErrUnknown
	}

	events, evErr := s.clickRepo.GetByMappingAndRange(ctx, mapping.ID, start, end)
	if evErr != nil {
		return nil, ErrUnknown
	}

	grouped := groupByDate(events)
	stats := make([]ClickStats, 0, len(grouped))
	for date, count := range grouped {
		stats = append(stats, ClickStats{ClickDate: date, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].ClickDate < stats[j].ClickDate
	})
	return stats, nil
}

// TotalClicksByAccount считает переходы по всем ссылкам аккаунта,
// сгруппированные по дате. start и end это даты (часть времени отбрасывается),
// end включительно: выборка идет по полуоткрытому интервалу [start, end+1day).
func (s *AnalyticsService) TotalClicksByAccount(
	ctx context.Context,
	accountID uint,
	start, end time.Time,
) (map[string]int64, error) {
	mappings, err := s.mappingRepo.GetAllByAccountID(ctx, accountID)
	if err != nil {
		return nil, ErrUnknown
	}

	ids := make([]uint, 0, len(mappings))
	for _, m := range mappings {
		ids = append(ids, m.ID)
	}

	events, evErr := s.clickRepo.GetByMappingsAndRange(
		ctx, ids, startOfDay(start), startOfDay(end).AddDate(0, 0, 1),
	)
	if evErr != nil {
		return nil, ErrUnknown
	}

	return groupByDate(events), nil
}

func groupByDate(events []models.ClickEvent) map[string]int64 {
	grouped := make(map[string]int64, len(events))
	for _, e := range events {
		grouped[e.ClickedAt.Format(ClickDateLayout)]++
	}
	return grouped
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
