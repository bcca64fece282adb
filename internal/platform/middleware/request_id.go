package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 是请求与响应中传递请求ID的头部名称。
const RequestIDHeader = "X-Request-ID"

// RequestID 返回一个为每个请求补全X-Request-ID的中间件。
// 调用方已携带的ID会被原样保留，方便前后端串联排查问题。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
