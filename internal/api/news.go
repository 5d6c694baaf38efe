package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetNews 获取企业新闻（占位数据）
// GET /api/news/:ticker
func (h *Handler) GetNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.news.Lookup(c.Param("ticker")))
}
