package metrics

import (
	"sync"
	"time"
)

// Metrics - внутрішні лічильники процесу. Скидаються тільки з рестартом.
type Metrics struct {
	mu sync.Mutex

	TotalUpdates      int64
	FailedUpdates     int64
	ProcessingTime    time.Duration
	MaxProcessingTime time.Duration

	ActiveGoroutines int
	MaxGoroutines    int

	ErrorsByType map[string]int64
}

var (
	instance *Metrics
	once     sync.Once
)

func GetMetrics() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			ErrorsByType: make(map[string]int64),
		}
	})
	return instance
}

func (m *Metrics) RecordUpdateProcessing(duration time.Duration, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TotalUpdates++
	if !success {
		m.FailedUpdates++
	}
	m.ProcessingTime += duration
	if duration > m.MaxProcessingTime {
		m.MaxProcessingTime = duration
	}
}

func (m *Metrics) RecordGoroutineCount(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ActiveGoroutines = count
	if count > m.MaxGoroutines {
		m.MaxGoroutines = count
	}
}

func (m *Metrics) RecordError(errorType string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ErrorsByType[errorType]++
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	avg := 0.0
	if m.TotalUpdates > 0 {
		avg = m.ProcessingTime.Seconds() / float64(m.TotalUpdates)
	}

	return map[string]interface{}{
		"total_updates":       m.TotalUpdates,
		"failed_updates":      m.FailedUpdates,
		"avg_processing_time": avg,
		"max_processing_time": m.MaxProcessingTime.Seconds(),
		"active_goroutines":   m.ActiveGoroutines,
		"max_goroutines":      m.MaxGoroutines,
		"errors_by_type":      m.ErrorsByType,
	}
}
