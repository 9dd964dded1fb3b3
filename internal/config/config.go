package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

type Config struct {
	Server struct {
		Host              string `json:"host"`
		Port              int    `json:"port"`
		Subpath           string `json:"subpath"`
		JWTSecret         string `json:"jwtSecret"`
		AdminPasswordHash string `json:"adminPasswordHash"`
	} `json:"server"`
	Postgres struct {
		DSN string `json:"dsn"`
	} `json:"postgres"`
	Redis struct {
		Addr     string `json:"addr"`
		Password string `json:"password"`
		DB       int    `json:"db"`
	} `json:"redis"`
	Ollama struct {
		URL            string  `json:"url"`
		Model          string  `json:"model"`
		TimeoutSeconds int     `json:"timeout_seconds"`
		MaxTokens      int     `json:"max_tokens"`
		Temperature    float64 `json:"temperature"`
		MaxRetries     int     `json:"max_retries"`
	} `json:"ollama"`
	Knowledge struct {
		DocsDir            string  `json:"docs_dir"`
		ChunkSize          int     `json:"chunk_size"`
		ChunkOverlap       int     `json:"chunk_overlap"`
		TopK               int     `json:"top_k"`
		RelevanceThreshold float64 `json:"relevance_threshold"`
		CacheSize          int     `json:"cache_size"`
	} `json:"knowledge"`
	Chat struct {
		CooldownSeconds int `json:"cooldown_seconds"`
		SessionTTLHours int `json:"session_ttl_hours"`
		HistoryLimit    int `json:"history_limit"`
	} `json:"chat"`
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads config.json from disk (singleton)
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		raw, err := os.ReadFile(path)
		if err != nil {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}
		var c Config
		if err := json.Unmarshal(raw, &c); err != nil {
			cfgErr = fmt.Errorf("invalid config format: %w", err)
			return
		}
		// Minimal validation
		if c.Server.JWTSecret == "" {
			cfgErr = errors.New("jwtSecret must be set in config")
			return
		}
		if c.Ollama.URL == "" {
			cfgErr = errors.New("ollama.url must be set in config")
			return
		}
		if !strings.HasPrefix(c.Ollama.URL, "http://") && !strings.HasPrefix(c.Ollama.URL, "https://") {
			cfgErr = fmt.Errorf("ollama.url must be an http(s) URL, got %q", c.Ollama.URL)
			return
		}
		applyDefaults(&c)
		cfg = &c
	})
	return cfg, cfgErr
}

func applyDefaults(c *Config) {
	if c.Ollama.Model == "" {
		c.Ollama.Model = "gemma3:latest"
	}
	if c.Ollama.TimeoutSeconds <= 0 {
		c.Ollama.TimeoutSeconds = 15
	}
	if c.Ollama.MaxRetries <= 0 {
		c.Ollama.MaxRetries = 2
	}
	if c.Knowledge.DocsDir == "" {
		c.Knowledge.DocsDir = "docs"
	}
	if c.Knowledge.ChunkSize <= 0 {
		c.Knowledge.ChunkSize = 500
	}
	if c.Knowledge.TopK <= 0 {
		c.Knowledge.TopK = 4
	}
	if c.Knowledge.RelevanceThreshold <= 0 {
		c.Knowledge.RelevanceThreshold = 0.1
	}
	if c.Knowledge.CacheSize <= 0 {
		c.Knowledge.CacheSize = 100
	}
	if c.Chat.CooldownSeconds <= 0 {
		c.Chat.CooldownSeconds = 2
	}
	if c.Chat.SessionTTLHours <= 0 {
		c.Chat.SessionTTLHours = 24
	}
	if c.Chat.HistoryLimit <= 0 {
		c.Chat.HistoryLimit = 50
	}
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
