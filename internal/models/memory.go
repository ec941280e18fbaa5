package models

import "time"

type Memory struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	ImageURL  string    `json:"image_url" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	// 关联
	ShareLinks []ShareLink `json:"share_links,omitempty" gorm:"foreignKey:MemoryID;references:ID"`
}

type MemoryCreateRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url" validate:"omitempty,max=512"`
}

type MemoryListRequest struct {
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
	Search string `form:"search"`
}

// MemoryResponse 是对外返回的公开字段，字段名与前端约定保持一致
type MemoryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *Memory) ToResponse() *MemoryResponse {
	return &MemoryResponse{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
	}
}
