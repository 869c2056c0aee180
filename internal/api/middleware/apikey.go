package middleware

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/gin-gonic/gin"

	"github.com/wilkensonio/reconnect-api/internal/repository"
	"github.com/wilkensonio/reconnect-api/pkg/response"
)

// APIKeyAuth API Key 认证中间件
// 对请求头里的明文 key 做 SHA-256，与 secrets 表存的哈希比对
// 查询失败或表为空时一律拒绝（fail closed）
func APIKeyAuth(secretRepo repository.SecretRepository, headerName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(headerName)
		if apiKey == "" {
			response.Forbidden(c, 10003, "API key is required")
			c.Abort()
			return
		}

		secrets, err := secretRepo.List(c.Request.Context())
		if err != nil {
			response.Forbidden(c, 10003, "Could not validate API key")
			c.Abort()
			return
		}

		sum := sha256.Sum256([]byte(apiKey))
		hashed := hex.EncodeToString(sum[:])
		for _, secret := range secrets {
			if secret.APISecretKey == hashed {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "You are not authorized to access this resource")
		c.Abort()
	}
}
