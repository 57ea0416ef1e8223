package dispatcher

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/dshills/vimops/internal/dispatcher/handler"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	actions map[string]*ActionMetrics

	totalDispatches uint64
	totalNoOps      uint64
	totalErrors     uint64
	totalPanics     uint64
	totalDuration   time.Duration
}

// ActionMetrics holds metrics for a specific action.
type ActionMetrics struct {
	Name          string
	DispatchCount uint64
	NoOpCount     uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastStatus    handler.ResultStatus
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actions: make(map[string]*ActionMetrics),
	}
}

// RecordDispatch records a dispatch event.
func (m *Metrics) RecordDispatch(actionName string, duration time.Duration, status handler.ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	am := m.actions[actionName]
	if am == nil {
		am = &ActionMetrics{Name: actionName}
		m.actions[actionName] = am
	}

	m.totalDispatches++
	m.totalDuration += duration
	am.DispatchCount++
	am.TotalDuration += duration
	am.MaxDuration = max(am.MaxDuration, duration)
	am.LastStatus = status

	switch status {
	case handler.StatusNoOp:
		m.totalNoOps++
		am.NoOpCount++
	case handler.StatusError:
		m.totalErrors++
		am.ErrorCount++
	}
}

// RecordPanic records a panic recovery. The dispatch itself is recorded
// separately as an error.
func (m *Metrics) RecordPanic(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalPanics++
}

// ActionStats returns a copy of the metrics for one action, or nil if it
// was never dispatched.
func (m *Metrics) ActionStats(actionName string) *ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	am := m.actions[actionName]
	if am == nil {
		return nil
	}
	c := *am
	return &c
}

// TopActions returns the n most dispatched actions.
func (m *Metrics) TopActions(n int) []ActionMetrics {
	m.mu.RLock()
	all := make([]ActionMetrics, 0, len(m.actions))
	for _, am := range m.actions {
		all = append(all, *am)
	}
	m.mu.RUnlock()

	slices.SortFunc(all, func(a, b ActionMetrics) int {
		if c := cmp.Compare(b.DispatchCount, a.DispatchCount); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return all[:min(n, len(all))]
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actions = make(map[string]*ActionMetrics)
	m.totalDispatches = 0
	m.totalNoOps = 0
	m.totalErrors = 0
	m.totalPanics = 0
	m.totalDuration = 0
}

// MetricsSnapshot is a point-in-time copy of the dispatch totals.
type MetricsSnapshot struct {
	TotalDispatches uint64
	TotalNoOps      uint64
	TotalErrors     uint64
	TotalPanics     uint64
	TotalDuration   time.Duration
	AverageDuration time.Duration
	ActionCount     int
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := MetricsSnapshot{
		TotalDispatches: m.totalDispatches,
		TotalNoOps:      m.totalNoOps,
		TotalErrors:     m.totalErrors,
		TotalPanics:     m.totalPanics,
		TotalDuration:   m.totalDuration,
		ActionCount:     len(m.actions),
	}
	if m.totalDispatches > 0 {
		s.AverageDuration = m.totalDuration / time.Duration(m.totalDispatches)
	}
	return s
}

// AverageDuration returns the average duration for the action.
func (am ActionMetrics) AverageDuration() time.Duration {
	if am.DispatchCount == 0 {
		return 0
	}
	return am.TotalDuration / time.Duration(am.DispatchCount)
}
