package statsd

import (
	std "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/goto/salt/log"
)

// Reporter provides functions for reporting metrics.
type Reporter struct {
	client *std.Client
	logger log.Logger
	config Config
}

// Init validates the config and initializes the statsD client. A disabled
// config yields a reporter whose metrics are dropped.
func Init(logger log.Logger, cfg Config) (*Reporter, error) {
	reporter := &Reporter{logger: logger, config: cfg}
	if !cfg.Enabled {
		logger.Warn("statsd is disabled")
		return reporter, nil
	}

	client, err := std.New(cfg.Address,
		std.WithNamespace(cfg.Prefix+cfg.Separator),
		std.WithoutTelemetry())
	if err != nil {
		return nil, err
	}
	logger.Info("statsd metrics are enabled", "address", cfg.Address)

	reporter.client = client
	return reporter, nil
}

// Close closes statsd connection
func (sd *Reporter) Close() {
	if sd != nil && sd.client != nil {
		if err := sd.client.Close(); err != nil {
			sd.logger.Warn("failed to close statsd client", "err", err)
		}
	}
}

// Histogram creates and returns a histogram metric.
func (sd *Reporter) Histogram(name string, value float64) *Metric {
	return sd.metric(name, func(c *std.Client, name string, tags []string, rate float64) error {
		return c.Histogram(name, value, tags, rate)
	})
}

func (sd *Reporter) metric(name string, send func(c *std.Client, name string, tags []string, rate float64) error) *Metric {
	if sd == nil {
		return nil
	}
	m := &Metric{
		logger:        sd.logger,
		name:          name,
		rate:          sd.config.SamplingRate,
		withInfluxTag: sd.config.WithInfluxTagFormat,
	}
	if sd.client != nil {
		client := sd.client
		m.publish = func(name string, tags []string, rate float64) error {
			return send(client, name, tags, rate)
		}
	}
	return m
}
