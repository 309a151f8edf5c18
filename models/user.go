package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Nama         string     `gorm:"size:180;not null" json:"nama"`
	Email        string     `gorm:"uniqueIndex;size:180" json:"email"`
	PasswordHash string     `gorm:"size:255" json:"-"` // jangan dikirim ke client
	Role         string     `gorm:"size:20;default:amil" json:"role"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
