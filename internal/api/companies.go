package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charu2409/Company-Feeds/internal/model"
)

// ListCompanies 按行业/排名/关键字筛选企业，返回完整结果（不分页）
// GET /api/companies?sector=&rank=&q=
func (h *Handler) ListCompanies(c *gin.Context) {
	q := model.CompanyQuery{
		Sector: c.Query("sector"),
		Rank:   c.Query("rank"),
		Search: c.Query("q"),
	}

	items := h.dataset.Query(q)
	h.logger.Debug("companies query",
		zap.String("sector", q.Sector),
		zap.String("rank", q.Rank),
		zap.String("q", q.Search),
		zap.Int("matched", len(items)),
	)

	c.JSON(http.StatusOK, items)
}

// GetFacets 获取筛选下拉项
// GET /api/facets
func (h *Handler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, h.dataset.Facets())
}
