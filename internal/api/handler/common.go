package handler

import (
	"Microblog/internal/api/dto"
	"Microblog/internal/pkg/response"
	"Microblog/internal/pkg/util"

	"github.com/gin-gonic/gin"
)

// bindID 解析路径参数 :id，失败时已写入 422 响应
func bindID(c *gin.Context) (uint64, bool) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BindError(c, err)
		return 0, false
	}
	if err := util.ValidateDTO(&uri); err != nil {
		response.BindError(c, err)
		return 0, false
	}
	return uri.ID, true
}
