// Package metrics collects process-wide authorization counters and latency
// samples. A single Collector is constructed at startup and injected into the
// orchestrator; its state lives until shutdown and is never persisted.
package metrics

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jeffleon2/draftea-authorizer-service/internal/models"
)

const (
	defaultSampleCapacity    = 10000
	defaultViolationCapacity = 100
	recentViolationsReported = 10
)

// Collector accumulates counters and duration samples safely under unbounded
// concurrent writers. Duration samples live in a fixed-size ring buffer so
// memory stays capped while percentile estimates remain usable at scale.
type Collector struct {
	totalRequests atomic.Int64
	approvedCount atomic.Int64
	deniedCount   atomic.Int64
	slaViolations atomic.Int64

	mu         sync.Mutex
	samples    []time.Duration
	next       int
	filled     int
	violations []models.SlaViolationRecord
}

func NewCollector() *Collector {
	return &Collector{
		samples: make([]time.Duration, defaultSampleCapacity),
	}
}

// RecordAuthorization registers one completed authorization and its duration.
func (c *Collector) RecordAuthorization(duration time.Duration, approved bool) {
	c.totalRequests.Add(1)
	status := "denied"
	if approved {
		c.approvedCount.Add(1)
		status = "approved"
	} else {
		c.deniedCount.Add(1)
	}

	AuthorizationsTotal.WithLabelValues(status).Inc()
	AuthorizationDuration.Observe(float64(duration.Milliseconds()))

	c.mu.Lock()
	c.samples[c.next] = duration
	c.next = (c.next + 1) % len(c.samples)
	if c.filled < len(c.samples) {
		c.filled++
	}
	c.mu.Unlock()
}

// RecordSlaViolation registers one authorization that breached the SLA limit.
func (c *Collector) RecordSlaViolation(transactionID string, duration time.Duration) {
	c.slaViolations.Add(1)
	SlaViolationsTotal.Inc()

	c.mu.Lock()
	c.violations = append(c.violations, models.SlaViolationRecord{
		TransactionID: transactionID,
		Duration:      duration,
		Timestamp:     time.Now().UTC(),
	})
	if len(c.violations) > defaultViolationCapacity {
		c.violations = c.violations[len(c.violations)-defaultViolationCapacity:]
	}
	c.mu.Unlock()
}

// GetSnapshot returns a point-in-time view of all counters, rates and latency
// percentiles.
func (c *Collector) GetSnapshot() models.MetricsSnapshot {
	total := c.totalRequests.Load()
	approved := c.approvedCount.Load()
	denied := c.deniedCount.Load()
	violations := c.slaViolations.Load()

	c.mu.Lock()
	durations := make([]time.Duration, c.filled)
	copy(durations, c.samples[:c.filled])
	recent := make([]models.SlaViolationRecord, len(c.violations))
	copy(recent, c.violations)
	c.mu.Unlock()

	approvalRate := 0.0
	complianceRate := 1.0
	if total > 0 {
		approvalRate = float64(approved) / float64(total)
		complianceRate = 1 - float64(violations)/float64(total)
	}

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	sort.Slice(recent, func(i, j int) bool { return recent[i].Timestamp.After(recent[j].Timestamp) })
	if len(recent) > recentViolationsReported {
		recent = recent[:recentViolationsReported]
	}

	return models.MetricsSnapshot{
		TotalRequests:     total,
		ApprovedCount:     approved,
		DeniedCount:       denied,
		SlaViolations:     violations,
		ApprovalRate:      approvalRate,
		SlaComplianceRate: complianceRate,
		AverageDuration:   average(durations),
		P95Duration:       percentile(durations, 0.95),
		P99Duration:       percentile(durations, 0.99),
		RecentViolations:  recent,
	}
}

func average(sorted []time.Duration) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	return sum / time.Duration(len(sorted))
}

// percentile expects an ascending slice and uses the nearest-rank method:
// index = ceil(p*n) - 1, clamped at zero.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	index := int(math.Ceil(p*float64(len(sorted)))) - 1
	if index < 0 {
		index = 0
	}
	return sorted[index]
}
