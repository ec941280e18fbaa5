package handlers

import (
	"errors"
	"memories-backend/internal/models"
	"memories-backend/internal/services"
	"memories-backend/internal/utils"
	"memories-backend/pkg/validator"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MemoryHandler struct {
	memoryService *services.MemoryService
}

func NewMemoryHandler(memoryService *services.MemoryService) *MemoryHandler {
	return &MemoryHandler{
		memoryService: memoryService,
	}
}

func (h *MemoryHandler) GetMemories(c *gin.Context) {
	var req models.MemoryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	// 设置默认值
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 {
		req.Limit = 20
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	memories, pagination, err := h.memoryService.GetMemories(&req)
	if err != nil {
		utils.InternalError(c)
		return
	}

	utils.Success(c, gin.H{
		"memories":   memories,
		"pagination": pagination,
	})
}

func (h *MemoryHandler) GetMemory(c *gin.Context) {
	memoryID := c.Param("id")

	memory, err := h.memoryService.GetMemoryByID(memoryID)
	if err != nil {
		if errors.Is(err, services.ErrMemoryNotFound) {
			utils.NotFound(c, "记忆不存在")
		} else {
			utils.InternalError(c)
		}
		return
	}

	utils.Success(c, memory)
}

func (h *MemoryHandler) CreateMemory(c *gin.Context) {
	var req models.MemoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	// 验证请求参数
	if err := validator.ValidateStruct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	memory, err := h.memoryService.CreateMemory(&req)
	if err != nil {
		utils.InternalError(c)
		return
	}

	utils.SuccessWithMessage(c, "记忆保存成功", memory)
}
