package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/services"
)

// RedirectController публичный переход по короткой ссылке.
type RedirectController struct {
	mappings MappingStore
}

func NewRedirectController(mappings MappingStore) *RedirectController {
	return &RedirectController{mappings: mappings}
}

// Redirect обрабатывает GET /:shortCode. Фиксирует переход и отвечает 302
// с адресом оригинальной ссылки в заголовке Location.
func (r *RedirectController) Redirect(ctx *gin.Context) {
	shortCode := ctx.Param("shortCode")

	if len(shortCode) != models.ShortCodeLength {
		ctx.String(http.StatusNotFound, ErrRecordNotFound.Error())
		return
	}

	resolveCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	mapping, err := r.mappings.Resolve(resolveCtx, shortCode)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			ctx.String(http.StatusNotFound, ErrRecordNotFound.Error())
			return
		}
		_ = ctx.Error(err)
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}

	ctx.Redirect(http.StatusFound, mapping.OriginalURL)
}
