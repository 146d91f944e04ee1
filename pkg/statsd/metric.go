package statsd

import (
	"sort"
	"strings"

	"github.com/goto/salt/log"
)

var influxEscaper = strings.NewReplacer(",", `\,`, "=", `\=`, " ", `\ `)

type publishFunc func(name string, tags []string, rate float64) error

// Metric represents a statsd metric.
type Metric struct {
	logger        log.Logger
	name          string
	rate          float64
	tags          map[string]string
	withInfluxTag bool
	publish       publishFunc
}

// Success tags the metric as successful.
func (m *Metric) Success() *Metric {
	return m.Tag("success", "true")
}

// Failure tags the metric as failed.
func (m *Metric) Failure(err error) *Metric {
	return m.Tag("success", "false")
}

// Tag adds a tag to the metric.
func (m *Metric) Tag(key string, val string) *Metric {
	if m == nil {
		return nil
	}
	if m.tags == nil {
		m.tags = map[string]string{}
	}
	m.tags[key] = val
	return m
}

// Publish sends the metric in the background. Tags are emitted sorted by
// key, folded into the name in influx format or as "key:value" otherwise.
func (m *Metric) Publish() {
	if m == nil || m.publish == nil {
		return
	}

	name, tags := m.name, m.datadogTags()
	if m.withInfluxTag {
		name, tags = m.influxName(), nil
	}
	go func() {
		if err := m.publish(name, tags, m.rate); err != nil {
			m.logger.Warn("failed to publish metric", "name", name, "err", err)
		}
	}()
}

func (m *Metric) sortedKeys() []string {
	keys := make([]string, 0, len(m.tags))
	for k := range m.tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Metric) datadogTags() []string {
	tags := make([]string, 0, len(m.tags))
	for _, k := range m.sortedKeys() {
		tags = append(tags, k+":"+m.tags[k])
	}
	return tags
}

func (m *Metric) influxName() string {
	var sb strings.Builder
	sb.WriteString(m.name)
	for _, k := range m.sortedKeys() {
		sb.WriteString(",")
		sb.WriteString(influxEscaper.Replace(k))
		sb.WriteString("=")
		sb.WriteString(influxEscaper.Replace(m.tags[k]))
	}
	return sb.String()
}
