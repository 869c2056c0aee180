package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wilkensonio/reconnect-api/pkg/jwt"
	"github.com/wilkensonio/reconnect-api/pkg/response"
)

// JWTAuth JWT 认证中间件
// 从 Authorization: Bearer <token> 中提取并验证 Access Token
// subject 为教职工邮箱或学生学号，注入上下文供 Handler 使用
func JWTAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, 10002, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "Could not validate credentials")
			c.Abort()
			return
		}

		c.Set("subject", claims.Subject)

		c.Next()
	}
}
