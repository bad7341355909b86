package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avolkov/linkstats/internal/models"
)

// MappingDTO представление короткой ссылки в JSON ответах.
type MappingDTO struct {
	ID          uint      `json:"id"`
	OriginalURL string    `json:"originalUrl"`
	ShortURL    string    `json:"shortUrl"`
	CreatedDate time.Time `json:"createdDate"`
	ClickCount  int64     `json:"clickCount"`
	Username    string    `json:"username"`
}

func newMappingDTO(m *models.Mapping, owner *models.Account, shortURL string) MappingDTO {
	return MappingDTO{
		ID:          m.ID,
		OriginalURL: m.OriginalURL,
		ShortURL:    shortURL,
		CreatedDate: m.CreatedAt,
		ClickCount:  m.ClickCount,
		Username:    owner.Username,
	}
}

// buildShortURL собирает полную короткую ссылку. Если базовый адрес не задан
// в конфигурации, берем хост из текущего запроса.
func buildShortURL(r *http.Request, baseURL *url.URL, shortCode string) string {
	if baseURL == nil {
		var scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
		return fmt.Sprintf("%s://%s/%s", scheme, r.Host, shortCode)
	}
	return fmt.Sprintf("%s/%s", baseURL, shortCode)
}
