package validator

import (
	"testing"

	"memories-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_UsesJSONTagNames(t *testing.T) {
	err := ValidateStruct(&models.ShareCreateRequest{})
	assert.Error(t, err)
	// 错误信息里用的是 JSON 字段名而不是 Go 字段名
	assert.Contains(t, err.Error(), "memoryId")
}

func TestValidateStruct_Valid(t *testing.T) {
	err := ValidateStruct(&models.ShareVerifyRequest{
		ShareID:  "abc",
		Password: "482913",
	})
	assert.NoError(t, err)
}
