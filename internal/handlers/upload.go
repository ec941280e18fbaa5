package handlers

import (
	"fmt"
	"memories-backend/internal/services"
	"memories-backend/internal/utils"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
	}
}

// UploadImage 把请求体作为图片上传到对象存储，返回公开访问地址
// POST /api/upload?filename=xxx
func (h *UploadHandler) UploadImage(c *gin.Context) {
	filename := c.Query("filename")
	if filename == "" || c.Request.Body == nil || c.Request.ContentLength == 0 {
		utils.Error(c, http.StatusBadRequest, "文件名缺失或未传输文件")
		return
	}

	// 文件名前加随机前缀，避免同名覆盖
	objectName := fmt.Sprintf("%s-%s", uuid.New().String(), path.Base(filename))

	contentType := c.GetHeader("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.storageService.PutBlob(c.Request.Context(), objectName, c.Request.Body, c.Request.ContentLength, contentType)
	if err != nil {
		logrus.WithError(err).Error("图片上传失败")
		utils.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
