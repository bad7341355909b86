package controllers

import (
	"errors"
	"net/url"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/linkstats/internal/controllers/middlewares"
	"github.com/avolkov/linkstats/internal/models"
)

const (
	DefaultRequestTimeout = 3 * time.Second
)

// hostnameRegex в соответствии с `RFC 1123` за исключением - исключает корневые доменные имена (без зоны).
var hostnameRegex = regexp.MustCompile(`^([a-zA-Z0-9](-?[a-zA-Z0-9])*\.)+([a-zA-Z0-9](-?[a-zA-Z0-9])*)$`)

// currentAccount возвращает аккаунт, положенный в контекст миддлваре
// аутентификации.
func currentAccount(ctx *gin.Context) (*models.Account, bool) {
	val, exists := ctx.Get(middlewares.CurrentAccountKey)
	if !exists {
		return nil, false
	}
	acc, ok := val.(*models.Account)
	return acc, ok
}

// validateURL проверяет, является ли строка корректным URL.
func validateURL(rawURL string) (*url.URL, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, errors.New("invalid URL format")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, errors.New("URL must have http or https scheme")
	}

	if parsedURL.Host == "" {
		return nil, errors.New("URL must have a host")
	}

	if parsedURL.Hostname() != "localhost" && !hostnameRegex.MatchString(parsedURL.Hostname()) {
		return nil, errors.New("invalid hostname")
	}

	return parsedURL, nil
}
