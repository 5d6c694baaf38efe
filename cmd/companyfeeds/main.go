package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/charu2409/Company-Feeds/internal/config"
	"github.com/charu2409/Company-Feeds/internal/importer"
	"github.com/charu2409/Company-Feeds/internal/server"
	"github.com/charu2409/Company-Feeds/internal/service/directory"
	"github.com/charu2409/Company-Feeds/internal/store"
)

// 退出码
const (
	exitOK       = 0
	exitInternal = 1
	exitDataset  = 2
	exitSchema   = 3
)

var (
	configPath string
	port       int
	devMode    bool
	source     string
	sheet      string
	verbose    bool

	appCfg *config.AppConfig
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "companyfeeds",
	Short: "Ranked company directory served from a spreadsheet",
	Long: `companyfeeds loads a ranked company spreadsheet once at startup and serves
it through a filterable JSON API (/api/companies?sector=&rank=&q=), the facet
lists used by the UI and a placeholder news lookup.

Run without a subcommand to start the server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, info, err := loadConfig()
		if err != nil {
			return err
		}
		// 日志依赖 dev_mode 与 log.level，必须在配置之后创建
		logger, err = newLogger(cfg, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if !info.FileFound {
			logger.Info("config file not found, using defaults", zap.String("path", info.Path))
		}
		appCfg = cfg
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the spreadsheet and start the HTTP server",
	RunE:  runServe,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load the spreadsheet and print a summary without serving",
	RunE:  runInspect,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.toml (default: next to the executable)")
	rootCmd.PersistentFlags().StringVar(&source, "source", "", "spreadsheet path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&sheet, "sheet", "", "sheet name (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "development mode")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 0, "listen port (config.toml wins when it sets server.port)")

	rootCmd.AddCommand(serveCmd, inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "companyfeeds: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var nf *directory.DatasetNotFoundError
	var se *directory.SchemaError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &nf):
		return exitDataset
	case errors.As(err, &se):
		return exitSchema
	default:
		return exitInternal
	}
}

// newLogger 开发模式用 zap 开发配置；级别优先级：--verbose > log.level > 模式默认
func newLogger(cfg *config.AppConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Server.DevMode {
		zc = zap.NewDevelopmentConfig()
	}
	switch {
	case verbose:
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case cfg.Log.Level != "":
		level, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	return zc.Build()
}

// loadConfig 配置文件 -> 环境变量 -> 命令行参数
func loadConfig() (*config.AppConfig, config.LoadConfigInfo, error) {
	cfg, info, err := config.LoadConfigWithInfo(configPath)
	if err != nil {
		return nil, info, fmt.Errorf("failed to load config %s: %w", info.Path, err)
	}

	if port > 0 && !info.PortSpecified {
		cfg.Server.Port = port
	}
	if devMode {
		cfg.Server.DevMode = true
	}
	if source != "" {
		cfg.Dataset.Path = source
	}
	if sheet != "" {
		cfg.Dataset.Sheet = sheet
	}
	return cfg, info, nil
}

func loadDataset(cfg *config.AppConfig, st *store.Store) (*directory.Dataset, error) {
	coord := importer.NewCoordinator(st, logger)
	return coord.Import(importer.ImportOptions{
		FilePath: cfg.Dataset.Path,
		Sheet:    cfg.Dataset.Sheet,
		Mapping:  cfg.ColumnMapping(),
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := appCfg

	st, err := store.New(cfg.Store.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()

	// 加载失败直接退出，不对外提供空数据
	ds, err := loadDataset(cfg, st)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(cfg, ds, st, logger)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", addr), zap.Bool("dev", cfg.Server.DevMode))
		errCh <- srv.Run(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func runInspect(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(appCfg, nil)
	if err != nil {
		return err
	}

	stats := ds.Stats()
	facets := ds.Facets()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "source:   %s [%s]\n", stats.Source, stats.Sheet)
	fmt.Fprintf(out, "sheets:   %s\n", strings.Join(stats.Sheets, ", "))
	fmt.Fprintf(out, "sha256:   %s\n", stats.SHA256)
	fmt.Fprintf(out, "rows:     %d kept, %d dropped\n", stats.Kept, stats.Dropped)
	fmt.Fprintf(out, "sectors:  %v\n", facets.Sectors)
	fmt.Fprintf(out, "ranks:    %v\n", facets.Ranks)
	return nil
}
