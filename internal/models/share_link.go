package models

import "time"

type ShareLink struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	MemoryID        string    `json:"memory_id" gorm:"size:36;not null;index"`
	OneTimePassword string    `json:"-" gorm:"size:6;not null"`
	IsUsed          bool      `json:"is_used" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"created_at"`
}

type ShareCreateRequest struct {
	MemoryID string `json:"memoryId" validate:"required"`
}

type ShareVerifyRequest struct {
	ShareID  string `json:"shareId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ShareLinkResponse 只回传链接ID和一次性密码，不回显 memoryId
type ShareLinkResponse struct {
	ID              string `json:"id"`
	OneTimePassword string `json:"oneTimePassword"`
}
