package config

import "time"

var bizConfig = defaultBizConfig()

// GetBizConfig returns the singleton biz config. The pointer is handed to the
// config loader at boot so the biz_config yaml subtree decodes into it.
func GetBizConfig() *BizConfig {
	return bizConfig
}

type BizConfig struct {
	Listing   ListingConfig   `yaml:"listing" json:"listing"`
	MenuCache MenuCacheConfig `yaml:"menu_cache" json:"menu_cache"`
	Bulk      BulkConfig      `yaml:"bulk" json:"bulk"`
	Migrate   MigrateConfig   `yaml:"migrate" json:"migrate"`
	Reports   ReportsConfig   `yaml:"reports" json:"reports"`
}

// ListingConfig bounds what a single admin list call may return. The list
// pipeline runs in memory, so the DAO edge caps row counts.
type ListingConfig struct {
	MaxRows int `yaml:"max_rows" json:"max_rows"`
}

type MenuCacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
	Key     string        `yaml:"key" json:"key"`
}

type BulkConfig struct {
	MaxRows     int   `yaml:"max_rows" json:"max_rows"`
	MaxBodySize int64 `yaml:"max_body_size" json:"max_body_size"`
}

type MigrateConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Dir     string `yaml:"dir" json:"dir"`
}

type ReportsConfig struct {
	RevenueDays int `yaml:"revenue_days" json:"revenue_days"`
	TopProducts int `yaml:"top_products" json:"top_products"`
}

func defaultBizConfig() *BizConfig {
	return &BizConfig{
		Listing:   ListingConfig{MaxRows: 5000},
		MenuCache: MenuCacheConfig{Enabled: true, TTL: 5 * time.Minute, Key: "evg:menu:v1"},
		Bulk:      BulkConfig{MaxRows: 1000, MaxBodySize: 2 << 20},
		Migrate:   MigrateConfig{Enabled: true, Dir: "migrations"},
		Reports:   ReportsConfig{RevenueDays: 30, TopProducts: 5},
	}
}

// Normalize re-applies defaults for fields the yaml left at zero.
func (c *BizConfig) Normalize() {
	d := defaultBizConfig()
	if c.Listing.MaxRows <= 0 {
		c.Listing.MaxRows = d.Listing.MaxRows
	}
	if c.MenuCache.TTL <= 0 {
		c.MenuCache.TTL = d.MenuCache.TTL
	}
	if c.MenuCache.Key == "" {
		c.MenuCache.Key = d.MenuCache.Key
	}
	if c.Bulk.MaxRows <= 0 {
		c.Bulk.MaxRows = d.Bulk.MaxRows
	}
	if c.Bulk.MaxBodySize <= 0 {
		c.Bulk.MaxBodySize = d.Bulk.MaxBodySize
	}
	if c.Migrate.Dir == "" {
		c.Migrate.Dir = d.Migrate.Dir
	}
	if c.Reports.RevenueDays <= 0 {
		c.Reports.RevenueDays = d.Reports.RevenueDays
	}
	if c.Reports.TopProducts <= 0 {
		c.Reports.TopProducts = d.Reports.TopProducts
	}
}
