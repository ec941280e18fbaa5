package services

import (
	"errors"
	"math"
	"memories-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemoryService struct {
	db *gorm.DB
}

func NewMemoryService(db *gorm.DB) *MemoryService {
	return &MemoryService{db: db}
}

func (s *MemoryService) GetMemories(req *models.MemoryListRequest) ([]models.Memory, *models.Pagination, error) {
	var memories []models.Memory
	var total int64

	query := s.db.Model(&models.Memory{})

	if req.Search != "" {
		query = query.Where("title LIKE ? OR content LIKE ?", "%"+req.Search+"%", "%"+req.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	offset := (req.Page - 1) * req.Limit
	pages := int(math.Ceil(float64(total) / float64(req.Limit)))

	err := query.Order("created_at DESC").Limit(req.Limit).Offset(offset).Find(&memories).Error
	if err != nil {
		return nil, nil, err
	}

	pagination := &models.Pagination{
		Page:  req.Page,
		Limit: req.Limit,
		Total: int(total),
		Pages: pages,
	}

	return memories, pagination, nil
}

func (s *MemoryService) GetMemoryByID(id string) (*models.Memory, error) {
	var memory models.Memory
	if err := s.db.Where("id = ?", id).First(&memory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemoryNotFound
		}
		return nil, err
	}
	return &memory, nil
}

func (s *MemoryService) CreateMemory(req *models.MemoryCreateRequest) (*models.Memory, error) {
	memory := models.Memory{
		ID:       uuid.New().String(),
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}

	if err := s.db.Create(&memory).Error; err != nil {
		return nil, err
	}

	return &memory, nil
}
