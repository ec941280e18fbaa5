package handlers

import (
	"errors"
	"memories-backend/internal/models"
	"memories-backend/internal/services"
	"memories-backend/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ShareHandler struct {
	shareService *services.ShareService
}

func NewShareHandler(shareService *services.ShareService) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
	}
}

// CreateShareLink 签发一次性分享链接
// POST /share  {memoryId} -> 200 {id, oneTimePassword} | 400 | 500
func (h *ShareHandler) CreateShareLink(c *gin.Context) {
	var req models.ShareCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MemoryID == "" {
		utils.Error(c, http.StatusBadRequest, "memoryId 不能为空")
		return
	}

	link, err := h.shareService.CreateShareLink(req.MemoryID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			utils.Error(c, http.StatusBadRequest, "memoryId 不能为空")
			return
		}
		logrus.WithError(err).Error("创建分享链接失败")
		utils.InternalError(c)
		return
	}

	logrus.WithFields(logrus.Fields{
		"share_id": link.ID,
	}).Info("分享链接已创建")

	// 响应不回显 memoryId
	c.JSON(http.StatusOK, models.ShareLinkResponse{
		ID:              link.ID,
		OneTimePassword: link.OneTimePassword,
	})
}

// VerifyShareLink 校验并兑换分享链接
// POST /verify-share  {shareId, password} -> 200 记忆字段 | 400 | 404 | 410 | 401 | 500
func (h *ShareHandler) VerifyShareLink(c *gin.Context) {
	var req models.ShareVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ShareID == "" || req.Password == "" {
		utils.Error(c, http.StatusBadRequest, "shareId 和 password 不能为空")
		return
	}

	memory, err := h.shareService.RedeemShareLink(req.ShareID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			utils.Error(c, http.StatusBadRequest, "shareId 和 password 不能为空")
		case errors.Is(err, services.ErrShareLinkNotFound):
			utils.NotFound(c, "分享链接不存在")
		case errors.Is(err, services.ErrShareLinkUsed):
			utils.Error(c, http.StatusGone, "分享链接已被使用")
		case errors.Is(err, services.ErrPasswordMismatch):
			utils.Error(c, http.StatusUnauthorized, "访问密码错误")
		case errors.Is(err, services.ErrMemoryNotFound):
			utils.NotFound(c, "分享的记忆不存在")
		default:
			logrus.WithError(err).Error("兑换分享链接失败")
			utils.InternalError(c)
		}
		return
	}

	logrus.WithFields(logrus.Fields{
		"share_id":  req.ShareID,
		"memory_id": memory.ID,
	}).Info("分享链接已兑换")

	c.JSON(http.StatusOK, memory.ToResponse())
}
