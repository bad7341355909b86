package models

import "time"

// RoleUser роль обычного пользователя. Других ролей пока нет.
const RoleUser = "user"

// Account модель аккаунта. После регистрации запись не изменяется.
type Account struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Username     string    `gorm:"uniqueIndex;size:64" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `gorm:"size:32" json:"role"`
}
