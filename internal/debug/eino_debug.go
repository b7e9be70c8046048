package debug

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/devops"
	"github.com/sirupsen/logrus"

	"github.com/stockpulse/stockpulse/config"
)

// EinoDebugger starts the eino visual debug plugin when enabled, so the
// LLM call graphs can be inspected through its web interface.
type EinoDebugger struct {
	cfg *config.Config
	log logrus.FieldLogger
}

func NewEinoDebugger(cfg *config.Config, log logrus.FieldLogger) *EinoDebugger {
	return &EinoDebugger{cfg: cfg, log: log}
}

func (d *EinoDebugger) Initialize(ctx context.Context) error {
	if !d.cfg.EinoDebugEnabled {
		return nil
	}
	if err := devops.Init(ctx); err != nil {
		return fmt.Errorf("init eino debug plugin: %w", err)
	}
	d.log.Info("eino debug plugin initialized")
	return nil
}

func (d *EinoDebugger) IsEnabled() bool {
	return d.cfg.EinoDebugEnabled
}
