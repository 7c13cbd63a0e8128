package middleware

import (
	"Microblog/internal/pkg/response"
	"Microblog/internal/service"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// UploadLimitMiddleware 声明的 Content-Length 超限的 multipart 请求直接拒绝，不读取请求体
func UploadLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || !strings.HasPrefix(c.ContentType(), "multipart/") {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			response.Error(c, service.PayloadTooLarge("File too large. Maximum allowed size is %s", HumanSize(maxBytes)))
			c.Abort()
			return
		}

		// 未声明长度（chunked）时由 MaxBytesReader 兜底
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// HumanSize 1048576 -> 1MB
func HumanSize(n int64) string {
	const mb = 1 << 20
	const kb = 1 << 10
	switch {
	case n%mb == 0:
		return strconv.FormatInt(n/mb, 10) + "MB"
	case n%kb == 0:
		return strconv.FormatInt(n/kb, 10) + "KB"
	default:
		return strconv.FormatInt(n, 10) + " bytes"
	}
}
