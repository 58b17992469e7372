package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/bodai/pkg/log"
)

type HTTPConfig struct {
	Addr       string `env:"BODAI_HTTP_ADDR" envDefault:":8000"`
	EnableCORS bool   `env:"BODAI_HTTP_CORS" envDefault:"false"`
}

func NewHTTPConfig(ctx context.Context) *HTTPConfig {
	c := &HTTPConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse HTTP config")
	}
	return c
}
