package importer

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/charu2409/Company-Feeds/internal/model"
	"github.com/charu2409/Company-Feeds/internal/service/directory"
	"github.com/charu2409/Company-Feeds/internal/store"
)

// Coordinator 启动时的数据集加载协调器：加载、记日志、写加载记录
type Coordinator struct {
	store  *store.Store
	logger *zap.Logger
}

// NewCoordinator 创建加载协调器；store 可为 nil（不记录加载日志）
func NewCoordinator(st *store.Store, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		store:  st,
		logger: logger,
	}
}

// ImportOptions 加载选项
type ImportOptions struct {
	FilePath string
	Sheet    string
	Mapping  model.ColumnMapping
}

// Import 加载一次数据集，不重试；失败时返回 *directory.DatasetNotFoundError 或 *directory.SchemaError
func (c *Coordinator) Import(opts ImportOptions) (*directory.Dataset, error) {
	logID := uuid.New().String()
	start := time.Now()
	log := c.logger.With(
		zap.String("load_id", logID),
		zap.String("source", opts.FilePath),
		zap.String("sheet", opts.Sheet),
	)

	if c.store != nil {
		if err := c.store.CreateLoadLog(logID, opts.FilePath, opts.Sheet, start); err != nil {
			log.Warn("create load log failed", zap.Error(err))
		}
	}

	log.Info("loading dataset", zap.Strings("columns", opts.Mapping.Sources()))
	ds, err := directory.Load(opts.FilePath, opts.Sheet, opts.Mapping)
	if err != nil {
		log.Error("dataset load failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		if c.store != nil {
			if lerr := c.store.FailLoadLog(logID, err); lerr != nil {
				log.Warn("update load log failed", zap.Error(lerr))
			}
		}
		return nil, err
	}

	stats := ds.Stats()
	log.Info("dataset loaded",
		zap.Int("total_rows", stats.TotalRows),
		zap.Int("kept", stats.Kept),
		zap.Int("dropped", stats.Dropped),
		zap.Int("sectors", len(ds.Facets().Sectors)),
		zap.Duration("elapsed", time.Since(start)),
	)
	if stats.Dropped > 0 {
		log.Warn("rows without company name or ticker were dropped", zap.Int("dropped", stats.Dropped))
	}

	if c.store != nil {
		if err := c.store.CompleteLoadLog(logID, store.LoadResult{
			FileSize:    stats.FileSize,
			FileHash:    stats.SHA256,
			TotalRows:   stats.TotalRows,
			KeptRows:    stats.Kept,
			DroppedRows: stats.Dropped,
		}); err != nil {
			log.Warn("complete load log failed", zap.Error(err))
		}
	}

	return ds, nil
}
