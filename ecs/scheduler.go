package ecs

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Ticks           uint64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type storageBinder interface {
	Init(storage *Storage)
}

type queryExecutor interface {
	Execute()
}

type registeredSystem struct {
	system  System
	queries []queryExecutor
	stats   SystemStats
}

// Scheduler runs systems as an ordered pipeline. Between two stages there is
// a synchronization point: the commands queued by stage N are flushed and the
// queries of stage N+1 are refreshed before it runs, so every write of stage N
// is visible to stage N+1.
type Scheduler struct {
	storage *Storage
	systems []*registeredSystem
	ticks   uint64
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Register appends a system to the pipeline and binds its Query and Singleton
// fields to the scheduler's storage.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systems = append(s.systems, &registeredSystem{
		system:  system,
		queries: s.bindFields(system),
		stats: SystemStats{
			Name:        systemType.Name(),
			MinDuration: time.Duration(1<<63 - 1),
		},
	})
}

func (s *Scheduler) bindFields(system System) []queryExecutor {
	value := reflect.ValueOf(system)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}

	var queries []queryExecutor
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		binder, ok := field.Addr().Interface().(storageBinder)
		if !ok {
			continue
		}
		binder.Init(s.storage)

		if query, ok := binder.(queryExecutor); ok {
			queries = append(queries, query)
		}
	}
	return queries
}

// Ticks returns how many ticks completed.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Once runs every system once. The first system error stops the tick; commands
// already flushed by earlier stages stay applied.
func (s *Scheduler) Once(dt float64) error {
	frame := newUpdateFrame(s.ticks, dt, s.storage)

	for _, rs := range s.systems {
		for _, query := range rs.queries {
			query.Execute()
		}

		start := time.Now()
		err := rs.system.Execute(frame)
		rs.record(time.Since(start))

		if err != nil {
			frame.Commands.Reset()
			return fmt.Errorf("system %s: %w", rs.stats.Name, err)
		}
		frame.Commands.Flush(s.storage)
	}

	s.ticks++
	return nil
}

func (rs *registeredSystem) record(d time.Duration) {
	rs.stats.ExecutionCount++
	rs.stats.LastDuration = d
	rs.stats.TotalDuration += d
	rs.stats.MinDuration = min(rs.stats.MinDuration, d)
	rs.stats.MaxDuration = max(rs.stats.MaxDuration, d)
}

// Run ticks at the given interval until the context is cancelled or a system
// fails. Cancellation returns nil.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := s.Once(dt); err != nil {
				return err
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Ticks:       s.ticks,
		Systems:     make([]SystemStats, len(s.systems)),
	}

	for i, rs := range s.systems {
		sys := rs.stats
		if sys.ExecutionCount > 0 {
			sys.AvgDuration = sys.TotalDuration / time.Duration(sys.ExecutionCount)
		} else {
			sys.MinDuration = 0
		}
		stats.Systems[i] = sys
		stats.TotalExecutions += sys.ExecutionCount
	}

	return stats
}
