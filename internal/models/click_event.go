package models

import "time"

// ClickEvent одно событие перехода по короткой ссылке. Записи только добавляются,
// обновления и удаления не предусмотрены - лог событий является источником истины
// для аналитики.
type ClickEvent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	MappingID uint      `gorm:"index:idx_click_events_mapping_clicked" json:"mappingId"`
	ClickedAt time.Time `gorm:"index:idx_click_events_mapping_clicked" json:"clickedAt"`
}
