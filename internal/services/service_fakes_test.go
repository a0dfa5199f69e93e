package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

// scriptedCompleter returns its replies in order and then repeats the last one
type scriptedCompleter struct {
	mu      sync.Mutex
	replies []string
	err     error
	prompts []string
}

func (c *scriptedCompleter) Complete(_ context.Context, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prompts = append(c.prompts, prompt)
	if c.err != nil {
		return "", c.err
	}
	if len(c.replies) == 0 {
		return "", nil
	}
	reply := c.replies[0]
	if len(c.replies) > 1 {
		c.replies = c.replies[1:]
	}
	return reply, nil
}

func (c *scriptedCompleter) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.prompts)
}

// recordingMetrics counts every counter increment by name and tags
type recordingMetrics struct {
	mu        sync.Mutex
	counters  map[string]int
	durations map[string]int
	gauges    map[string]float64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		counters:  make(map[string]int),
		durations: make(map[string]int),
		gauges:    make(map[string]float64),
	}
}

func metricKey(name string, tags map[string]string) string {
	parts := make([]string, 0, len(tags))
	for k, v := range tags {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return name + "{" + strings.Join(parts, ",") + "}"
}

func (m *recordingMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[metricKey(name, tags)]++
}

func (m *recordingMetrics) RecordProcessingTime(name string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations[name]++
}

func (m *recordingMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[metricKey(name, tags)] = value
}

func (m *recordingMetrics) count(name string, tags map[string]string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[metricKey(name, tags)]
}

var errArchiveUnavailable = errors.New("bucket unavailable")

type failingArchive struct{}

func (failingArchive) Store(context.Context, string, []byte, string) (string, error) {
	return "", errArchiveUnavailable
}

func (failingArchive) Fetch(context.Context, string) ([]byte, error) {
	return nil, errArchiveUnavailable
}
