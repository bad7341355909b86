package controllers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/linkstats/internal/services"
)

// analyticsDateLayout формат границ периода в GET /api/urls/analytics.
const analyticsDateLayout = "2006-01-02T15:04:05"

type shortenRequest struct {
	OriginalURL string `json:"originalUrl" binding:"required"`
}

// MappingController эндпоинты владельца ссылок. Все маршруты требуют
// аутентификации, аккаунт берется из контекста запроса.
type MappingController struct {
	mappings  MappingStore
	analytics AnalyticsStore
	baseURL   *url.URL
}

func NewMappingController(mappings MappingStore, analytics AnalyticsStore, baseURL *url.URL) *MappingController {
	return &MappingController{
		mappings:  mappings,
		analytics: analytics,
		baseURL:   baseURL,
	}
}

// Shorten обрабатывает POST /api/urls/shorten.
func (m *MappingController) Shorten(ctx *gin.Context) {
	acc, ok := currentAccount(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req shortenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parsedURL, parseErr := validateURL(req.OriginalURL)
	if parseErr != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": parseErr.Error()})
		return
	}

	createCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	mapping, err := m.mappings.Create(createCtx, parsedURL.String(), acc)
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}

	shortURL := buildShortURL(ctx.Request, m.baseURL, mapping.ShortCode)
	ctx.JSON(http.StatusOK, newMappingDTO(mapping, acc, shortURL))
}

// MyURLs обрабатывает GET /api/urls/myUrls. Возвращает все ссылки текущего
// аккаунта.
func (m *MappingController) MyURLs(ctx *gin.Context) {
	acc, ok := currentAccount(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	listCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	mappings, err := m.mappings.GetAllByAccount(listCtx, acc.ID)
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}

	dtos := make([]MappingDTO, 0, len(mappings))
	for i := range mappings {
		shortURL := buildShortURL(ctx.Request, m.baseURL, mappings[i].ShortCode)
		dtos = append(dtos, newMappingDTO(&mappings[i], acc, shortURL))
	}
	ctx.JSON(http.StatusOK, dtos)
}

// Analytics обрабатывает GET /api/urls/analytics/:shortCode.
// Границы периода передаются параметрами startDate и endDate в формате
// 2006-01-02T15:04:05, обе включительно.
func (m *MappingController) Analytics(ctx *gin.Context) {
	if _, ok := currentAccount(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	start, startErr := time.Parse(analyticsDateLayout, ctx.Query("startDate"))
	if startErr != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	end, endErr := time.Parse(analyticsDateLayout, ctx.Query("endDate"))
	if endErr != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}

	statsCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	stats, err := m.analytics.ClicksByCode(statsCtx, ctx.Param("shortCode"), start, end)
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// TotalClicks обрабатывает GET /api/urls/totalClicks. Возвращает суммарные
// переходы по всем ссылкам аккаунта, сгруппированные по дате. Границы
// периода передаются параметрами startDate и endDate в формате 2006-01-02.
func (m *MappingController) TotalClicks(ctx *gin.Context) {
	acc, ok := currentAccount(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	start, startErr := time.Parse(services.ClickDateLayout, ctx.Query("startDate"))
	if startErr != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	end, endErr := time.Parse(services.ClickDateLayout, ctx.Query("endDate"))
	if endErr != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}

	totalsCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	totals, err := m.analytics.TotalClicksByAccount(totalsCtx, acc.ID, start, end)
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}
	ctx.JSON(http.StatusOK, totals)
}
