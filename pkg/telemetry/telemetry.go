package telemetry

import (
	"context"
	"time"

	"github.com/goto/salt/log"
)

const gracePeriod = 5 * time.Second

type Config struct {
	AppVersion string `yaml:"-" mapstructure:"-"`

	AppName       string              `yaml:"app_name" mapstructure:"app_name" default:"gossip"`
	OpenTelemetry OpenTelemetryConfig `yaml:"open_telemetry" mapstructure:"open_telemetry"`
}

// Init installs the global meter and tracer providers. The returned clean up
// flushes and shuts them down; it is safe to call when telemetry is disabled.
func Init(ctx context.Context, cfg Config, logger log.Logger) (cleanUp func(), err error) {
	shutdown, err := initOTLP(ctx, cfg, logger)
	if err != nil {
		return noOp, err
	}
	return shutdown, nil
}
