// Package timing records how long loads and renders take so they can be logged.
package timing

import (
	"context"
	"sync"
	"time"
)

type timingKey struct{}

type TimingInfo struct {
	Operation string
	StartTime time.Time
}

type Tracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	enabled bool
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		enabled: true,
		now:     time.Now,
	}
}

func (tt *Tracker) StartTiming(operation string) context.Context {
	if !tt.isEnabled() {
		return context.Background()
	}

	return context.WithValue(context.Background(), timingKey{}, TimingInfo{
		Operation: operation,
		StartTime: tt.now(),
	})
}

// EndTiming records the elapsed time for the operation started on ctx and
// returns it. A context not produced by StartTiming yields zero.
func (tt *Tracker) EndTiming(ctx context.Context) time.Duration {
	if !tt.isEnabled() {
		return 0
	}

	timingInfo, ok := ctx.Value(timingKey{}).(TimingInfo)
	if !ok {
		return 0
	}

	duration := tt.now().Sub(timingInfo.StartTime)

	tt.mu.Lock()
	tt.timings[timingInfo.Operation] = append(tt.timings[timingInfo.Operation], duration)
	tt.mu.Unlock()

	return duration
}

func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

func (tt *Tracker) Operations() []string {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	ops := make([]string, 0, len(tt.timings))
	for op := range tt.timings {
		ops = append(ops, op)
	}
	return ops
}

func (tt *Tracker) GetAverageTime(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range timings {
		total += duration
	}

	return total / time.Duration(len(timings))
}

func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

func (tt *Tracker) isEnabled() bool {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	return tt.enabled
}

func (tt *Tracker) Reset(operation string) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	if operation == "" {
		tt.timings = make(map[string][]time.Duration)
	} else {
		delete(tt.timings, operation)
	}
}
