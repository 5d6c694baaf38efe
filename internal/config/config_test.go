package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/charu2409/Company-Feeds/internal/model"
)

func TestLoadConfigWithInfo_MissingFileUsesDefaults(t *testing.T) {
	cfg, info, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadConfigWithInfo failed: %v", err)
	}
	if info.FileFound || info.PortSpecified {
		t.Fatalf("unexpected info: %+v", info)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(model.DefaultColumnMapping(), cfg.ColumnMapping()); diff != "" {
		t.Fatalf("default mapping mismatch:\n%s", diff)
	}
}

func TestLoadConfigWithInfo_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[server]
port = 8088

[dataset]
path = "data/ranked.xlsx"
sheet = "Ranked"

[dataset.columns]
company_name = "Company"
ticker = "Symbol"
rank = "Tier"

[news]
limit_per_company = 3
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, info, err := LoadConfigWithInfo(path)
	if err != nil {
		t.Fatalf("LoadConfigWithInfo failed: %v", err)
	}
	if !info.FileFound || !info.PortSpecified {
		t.Fatalf("unexpected info: %+v", info)
	}
	if cfg.Server.Port != 8088 || cfg.Dataset.Sheet != "Ranked" || cfg.News.LimitPerCompany != 3 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if got, want := cfg.Dataset.Path, filepath.Join(dir, "data", "ranked.xlsx"); got != want {
		t.Fatalf("dataset path=%q, want %q", got, want)
	}
	// 未配置的段保留默认值
	if cfg.Store.DSN != DefaultConfig().Store.DSN {
		t.Fatalf("store dsn=%q", cfg.Store.DSN)
	}

	want := model.ColumnMapping{
		{Source: "Company", Target: model.FieldCompanyName},
		{Source: "Symbol", Target: model.FieldTicker},
		{Source: "Tier", Target: model.FieldRank},
	}
	if diff := cmp.Diff(want, cfg.ColumnMapping()); diff != "" {
		t.Fatalf("mapping mismatch:\n%s", diff)
	}
}

func TestLoadConfigWithInfo_EnvOverrides(t *testing.T) {
	t.Setenv(EnvSource, "/srv/ranked.xlsx")
	t.Setenv(EnvSheet, "Top100")

	cfg, _, err := LoadConfigWithInfo(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadConfigWithInfo failed: %v", err)
	}
	if cfg.Dataset.Path != "/srv/ranked.xlsx" || cfg.Dataset.Sheet != "Top100" {
		t.Fatalf("env overrides not applied: %+v", cfg.Dataset)
	}
}

func TestLoadConfigWithInfo_InvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server\nport = "), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := LoadConfigWithInfo(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
