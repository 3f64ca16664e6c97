package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server  ServerConfig
	Engine  EngineConfig
	Tracker TrackerConfig
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Port      string `env:"PORT" envDefault:"5000"`
	StaticDir string `env:"STATIC_DIR"`
	// Addr is derived from Port by Load.
	Addr string
}

// EngineConfig 描述情绪分类策略。
type EngineConfig struct {
	SentimentRefinement     bool `env:"SENTIMENT_REFINEMENT_ENABLED" envDefault:"false"`
	NegativeThreshold       int  `env:"SENTIMENT_NEGATIVE_THRESHOLD" envDefault:"-3"`
	PositiveThreshold       int  `env:"SENTIMENT_POSITIVE_THRESHOLD" envDefault:"3"`
	CrisisOverridesExplicit bool `env:"CRISIS_OVERRIDES_EXPLICIT_MOOD" envDefault:"false"`
}

// TrackerConfig 描述情绪记录存储。
type TrackerConfig struct {
	DatabaseURL  string `env:"DATABASE_URL"`
	HistoryLimit int    `env:"MOOD_HISTORY_LIMIT" envDefault:"30"`
	StatsWindow  int    `env:"MOOD_STATS_WINDOW" envDefault:"7"`
}

// PersistentStore 表示是否配置了数据库。
func (c TrackerConfig) PersistentStore() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	addr, err := resolveAddr(cfg.Server.Port)
	if err != nil {
		return nil, err
	}
	cfg.Server.Addr = addr

	if cfg.Engine.NegativeThreshold > cfg.Engine.PositiveThreshold {
		return nil, fmt.Errorf("SENTIMENT_NEGATIVE_THRESHOLD (%d) must not exceed SENTIMENT_POSITIVE_THRESHOLD (%d)",
			cfg.Engine.NegativeThreshold, cfg.Engine.PositiveThreshold)
	}

	if cfg.Tracker.HistoryLimit < 1 {
		cfg.Tracker.HistoryLimit = 1
	}
	if cfg.Tracker.StatsWindow < 1 {
		cfg.Tracker.StatsWindow = 1
	}

	return cfg, nil
}

// resolveAddr 解析服务器监听地址。
func resolveAddr(port string) (string, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "5000"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return port, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	return ":" + port, nil
}
