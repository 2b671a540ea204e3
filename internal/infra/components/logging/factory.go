package logging

import (
	"fmt"

	"github.com/S3b4sB0t3r0/evg-server/internal/infra/core"
)

type Factory struct{}

func NewFactory() *Factory { return &Factory{} }

func (f *Factory) Create(cfg interface{}) (core.Component, error) {
	logCfg, ok := cfg.(*LoggingConfig)
	if !ok {
		return nil, fmt.Errorf("invalid config type for logging component (need *LoggingConfig)")
	}
	if !logCfg.Enabled {
		return nil, fmt.Errorf("logging component disabled")
	}
	return NewLoggerComponent(logCfg), nil
}
