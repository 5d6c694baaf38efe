package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charu2409/Company-Feeds/internal/service/directory"
	"github.com/charu2409/Company-Feeds/internal/store"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Dataset  directory.Stats `json:"dataset"`
	Sectors  int             `json:"sectors"`
	Ranks    int             `json:"ranks"`
	LastLoad *store.LoadLog  `json:"lastLoad,omitempty"`
}

// GetStatus 获取数据集加载状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	facets := h.dataset.Facets()
	resp := StatusResponse{
		Dataset: h.dataset.Stats(),
		Sectors: len(facets.Sectors),
		Ranks:   len(facets.Ranks),
	}

	if h.store != nil {
		last, err := h.store.LastLoadLog()
		if err == nil {
			resp.LastLoad = last
		} else {
			h.logger.Debug("no load log available", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, resp)
}
