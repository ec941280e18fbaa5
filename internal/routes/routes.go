package routes

import (
	"memories-backend/internal/config"
	"memories-backend/internal/handlers"
	"memories-backend/internal/middleware"
	"memories-backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, storage *services.StorageService, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	memoryService := services.NewMemoryService(db)
	shareService := services.NewShareService(db)

	memoryHandler := handlers.NewMemoryHandler(memoryService)
	shareHandler := handlers.NewShareHandler(shareService)
	uploadHandler := handlers.NewUploadHandler(storage)

	// 分享协议端点，请求和响应格式与前端约定保持一致
	router.POST("/share", shareHandler.CreateShareLink)
	router.POST("/verify-share", shareHandler.VerifyShareLink)

	api := router.Group("/api")
	{
		memories := api.Group("/memories")
		{
			memories.GET("", memoryHandler.GetMemories)
			memories.POST("", memoryHandler.CreateMemory)
			memories.GET("/:id", memoryHandler.GetMemory)
		}

		api.POST("/upload", uploadHandler.UploadImage)

		// 兼容前端走 /api 前缀的调用方式
		api.POST("/share", shareHandler.CreateShareLink)
		api.POST("/verify-share", shareHandler.VerifyShareLink)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "服务运行正常",
		})
	})

	return router
}
