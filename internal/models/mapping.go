package models

import "time"

// ShortCodeLength длина короткого кода.
const ShortCodeLength = 8

// Mapping структура модели хранения короткой ссылки.
// Счетчик ClickCount меняется только при редиректе и только атомарным инкрементом,
// см. MappingRepository.IncrementClickCount.
type Mapping struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	ShortCode   string    `gorm:"uniqueIndex;size:8" json:"shortCode"`
	OriginalURL string    `gorm:"size:2048" json:"originalUrl"`
	AccountID   uint      `gorm:"index" json:"accountId"`
	ClickCount  int64     `json:"clickCount"`
}
