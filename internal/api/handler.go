package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/charu2409/Company-Feeds/internal/service/directory"
	"github.com/charu2409/Company-Feeds/internal/service/news"
	"github.com/charu2409/Company-Feeds/internal/store"
)

// Handler API 处理器
type Handler struct {
	dataset *directory.Dataset
	news    *news.Service
	store   *store.Store
	logger  *zap.Logger
}

// NewHandler 创建 API 处理器；dataset 必须已加载
func NewHandler(dataset *directory.Dataset, newsSvc *news.Service, st *store.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if newsSvc == nil {
		newsSvc = news.NewService(news.DefaultLimit)
	}
	return &Handler{
		dataset: dataset,
		news:    newsSvc,
		store:   st,
		logger:  logger,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	// 企业列表与筛选项
	router.GET("/companies", h.ListCompanies)
	router.GET("/facets", h.GetFacets)

	// 新闻（占位）
	router.GET("/news/:ticker", h.GetNews)
}
