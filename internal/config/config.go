package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/charu2409/Company-Feeds/internal/model"
)

// AppConfig 应用配置
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Dataset DatasetConfig `toml:"dataset"`
	News    NewsConfig    `toml:"news"`
	Store   StoreConfig   `toml:"store"`
	Log     LogConfig     `toml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DatasetConfig 源表配置
type DatasetConfig struct {
	Path  string `toml:"path"`
	Sheet string `toml:"sheet"`
	// Columns 规范字段 -> 源列名，例如 rank = "Expansion_Rank"
	Columns map[string]string `toml:"columns"`
}

// NewsConfig 新闻占位接口配置
type NewsConfig struct {
	LimitPerCompany int `toml:"limit_per_company"`
}

// StoreConfig 加载日志存储（进程内 SQLite）
type StoreConfig struct {
	DSN string `toml:"dsn"`
}

// LogConfig 日志配置；Level 为空时开发模式 debug、生产模式 info
type LogConfig struct {
	Level string `toml:"level"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	FileFound     bool
	PortSpecified bool
}

// 环境变量覆盖
const (
	EnvSource = "COMPANY_FEEDS_SOURCE"
	EnvSheet  = "COMPANY_FEEDS_SHEET"
)

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    5000,
			DevMode: false,
		},
		Dataset: DatasetConfig{
			Path:  "Top-100-companies-rule-finbert-ranked.xlsx",
			Sheet: "Sheet1",
		},
		News: NewsConfig{
			LimitPerCompany: 5,
		},
		Store: StoreConfig{
			DSN: "file:company_feeds?mode=memory&cache=shared",
		},
	}
}

// ColumnMapping 源列映射；未配置时使用现有排名表的默认映射
func (c *AppConfig) ColumnMapping() model.ColumnMapping {
	if len(c.Dataset.Columns) == 0 {
		return model.DefaultColumnMapping()
	}
	return model.FromTargetMap(c.Dataset.Columns)
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultConfigPath 可执行文件同目录下的 config.toml
func DefaultConfigPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadConfigWithInfo 加载配置并返回元信息
// path 为空时读取可执行文件同目录下的 config.toml；文件不存在时使用默认配置
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	config := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath()
	}
	info := LoadConfigInfo{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, info, err
		}
	} else {
		info.FileFound = true
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
		// 相对路径以配置文件所在目录为基准
		if config.Dataset.Path != "" && !filepath.IsAbs(config.Dataset.Path) {
			config.Dataset.Path = filepath.Join(filepath.Dir(path), config.Dataset.Path)
		}
	}

	if v := os.Getenv(EnvSource); v != "" {
		config.Dataset.Path = v
	}
	if v := os.Getenv(EnvSheet); v != "" {
		config.Dataset.Sheet = v
	}

	return config, info, nil
}
