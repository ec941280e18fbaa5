package services

import (
	"crypto/rand"
	"errors"
	"math/big"
	"memories-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidInput      = errors.New("missing required field")
	ErrShareLinkNotFound = errors.New("share link not found")
	ErrShareLinkUsed     = errors.New("share link already used")
	ErrPasswordMismatch  = errors.New("one-time password mismatch")
	ErrMemoryNotFound    = errors.New("memory not found")
)

type ShareService struct {
	db *gorm.DB
}

func NewShareService(db *gorm.DB) *ShareService {
	return &ShareService{db: db}
}

// CreateShareLink 为指定记忆签发一次性分享链接。
// 不校验记忆是否存在：指向未知记忆的链接在兑换时会在取记忆这一步返回未找到。
func (s *ShareService) CreateShareLink(memoryID string) (*models.ShareLink, error) {
	if memoryID == "" {
		return nil, ErrInvalidInput
	}

	otp, err := generateOneTimePassword()
	if err != nil {
		return nil, err
	}

	link := models.ShareLink{
		ID:              uuid.New().String(),
		MemoryID:        memoryID,
		OneTimePassword: otp,
		IsUsed:          false,
	}

	if err := s.db.Create(&link).Error; err != nil {
		return nil, err
	}

	return &link, nil
}

// RedeemShareLink 校验 (链接ID, 密码) 并兑换对应的记忆。
// 检查顺序固定：是否存在 → 是否已使用 → 密码是否匹配。
// 已使用的判断先于密码判断，重放已消费的链接永远得到"已使用"而不是"密码错误"。
// 密码错误不消费链接。
func (s *ShareService) RedeemShareLink(shareID, password string) (*models.Memory, error) {
	if shareID == "" || password == "" {
		return nil, ErrInvalidInput
	}

	var link models.ShareLink
	if err := s.db.Where("id = ?", shareID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShareLinkNotFound
		}
		return nil, err
	}

	if link.IsUsed {
		return nil, ErrShareLinkUsed
	}

	if link.OneTimePassword != password {
		return nil, ErrPasswordMismatch
	}

	// 条件更新实现"仅当未使用时标记为已使用"，并发兑换只有一个能成功。
	// 标记必须在返回记忆之前落库，更新失败则不返回任何内容。
	result := s.db.Model(&models.ShareLink{}).
		Where("id = ? AND is_used = ?", link.ID, false).
		Update("is_used", true)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrShareLinkUsed
	}

	// 链接已消费，即使记忆在签发后被删除也不回滚
	var memory models.Memory
	if err := s.db.Where("id = ?", link.MemoryID).First(&memory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemoryNotFound
		}
		return nil, err
	}

	return &memory, nil
}

// generateOneTimePassword 生成 [100000, 999999] 范围内的6位数字密码
func generateOneTimePassword() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return (n.Add(n, big.NewInt(100000))).String(), nil
}
