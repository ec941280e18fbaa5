package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"memories-backend/internal/handlers"
	"memories-backend/internal/models"
	"memories-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Memory{}, &models.ShareLink{}))

	shareHandler := handlers.NewShareHandler(services.NewShareService(db))

	router := gin.New()
	router.POST("/share", shareHandler.CreateShareLink)
	router.POST("/verify-share", shareHandler.VerifyShareLink)
	return router, db
}

func seedMemory(t *testing.T, db *gorm.DB) *models.Memory {
	t.Helper()
	memory := models.Memory{
		ID:       uuid.New().String(),
		Title:    "海边的下午",
		Content:  "涨潮之前拍的照片",
		ImageURL: "http://localhost:9000/memories/beach.jpg",
	}
	require.NoError(t, db.Create(&memory).Error)
	return &memory
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func issueLink(t *testing.T, router *gin.Engine, memoryID string) models.ShareLinkResponse {
	t.Helper()
	w := postJSON(t, router, "/share", gin.H{"memoryId": memoryID})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ShareLinkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateShareLinkEndpoint(t *testing.T) {
	router, db := setupRouter(t)
	memory := seedMemory(t, db)

	w := postJSON(t, router, "/share", gin.H{"memoryId": memory.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotEmpty(t, raw["id"])
	assert.Regexp(t, `^[0-9]{6}$`, raw["oneTimePassword"])
	// 响应不能泄露 memoryId
	assert.NotContains(t, raw, "memoryId")
	assert.NotContains(t, raw, "memory_id")
}

func TestCreateShareLinkEndpoint_MissingMemoryID(t *testing.T) {
	router, _ := setupRouter(t)

	w := postJSON(t, router, "/share", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, router, "/share", gin.H{"memoryId": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyShareLinkEndpoint(t *testing.T) {
	router, db := setupRouter(t)
	memory := seedMemory(t, db)
	link := issueLink(t, router, memory.ID)

	w := postJSON(t, router, "/verify-share", gin.H{"shareId": link.ID, "password": link.OneTimePassword})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MemoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, memory.ID, resp.ID)
	assert.Equal(t, memory.Title, resp.Title)
	assert.Equal(t, memory.Content, resp.Content)
	assert.Equal(t, memory.ImageURL, resp.ImageURL)

	// 第二次兑换返回 410
	w = postJSON(t, router, "/verify-share", gin.H{"shareId": link.ID, "password": link.OneTimePassword})
	assert.Equal(t, http.StatusGone, w.Code)
}

func TestVerifyShareLinkEndpoint_MissingFields(t *testing.T) {
	router, _ := setupRouter(t)

	w := postJSON(t, router, "/verify-share", gin.H{"shareId": "abc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, router, "/verify-share", gin.H{"password": "123456"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyShareLinkEndpoint_NotFound(t *testing.T) {
	router, _ := setupRouter(t)

	w := postJSON(t, router, "/verify-share", gin.H{"shareId": "unknown-id", "password": "123456"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyShareLinkEndpoint_WrongPassword(t *testing.T) {
	router, db := setupRouter(t)
	memory := seedMemory(t, db)
	link := issueLink(t, router, memory.ID)

	w := postJSON(t, router, "/verify-share", gin.H{"shareId": link.ID, "password": "000000"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 密码错误不消费链接，正确密码仍可兑换
	w = postJSON(t, router, "/verify-share", gin.H{"shareId": link.ID, "password": link.OneTimePassword})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerifyShareLinkEndpoint_UsedBeforePassword(t *testing.T) {
	router, db := setupRouter(t)
	memory := seedMemory(t, db)
	link := issueLink(t, router, memory.ID)

	w := postJSON(t, router, "/verify-share", gin.H{"shareId": link.ID, "password": link.OneTimePassword})
	require.Equal(t, http.StatusOK, w.Code)

	// 已使用优先于密码错误
	w = postJSON(t, router, "/verify-share", gin.H{"shareId": link.ID, "password": "000000"})
	assert.Equal(t, http.StatusGone, w.Code)
}

func TestVerifyShareLinkEndpoint_MemoryDeleted(t *testing.T) {
	router, db := setupRouter(t)
	memory := seedMemory(t, db)
	link := issueLink(t, router, memory.ID)

	require.NoError(t, db.Delete(&models.Memory{}, "id = ?", memory.ID).Error)

	w := postJSON(t, router, "/verify-share", gin.H{"shareId": link.ID, "password": link.OneTimePassword})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 链接已被消费
	w = postJSON(t, router, "/verify-share", gin.H{"shareId": link.ID, "password": link.OneTimePassword})
	assert.Equal(t, http.StatusGone, w.Code)
}
