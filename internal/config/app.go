package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/bodai/pkg/log"
)

type AppConfig struct {
	RuntimePath   string `env:"BODAI_RUNTIME_PATH" envDefault:".bodai"`
	Language      string `env:"BODAI_LANGUAGE" envDefault:"en"`
	KnowledgePath string `env:"BODAI_KNOWLEDGE_PATH"`

	// Transport Flags
	EnableHTTP     bool `env:"ENABLE_HTTP" envDefault:"true"`
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

// ParseAppConfig reads the environment and resolves the runtime path
// against the home directory.
func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	c.RuntimePath = resolvePath(c.RuntimePath)
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "bodai.sqlite3")
}

func (c AppConfig) GetContextPath() string {
	return filepath.Join(c.RuntimePath, "context.json")
}

func (c AppConfig) GetKnowledgePath() string {
	return c.KnowledgePath
}

func (c AppConfig) GetLanguage() string {
	return c.Language
}
