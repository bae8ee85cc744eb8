package ports

import "go.trai.ch/rebuildat/internal/core/domain"

// ScheduleWriter defines the interface for persisting the rebuild schedule.
//
//go:generate mockgen -source=schedule_writer.go -destination=mocks/mock_schedule_writer.go -package=mocks
type ScheduleWriter interface {
	// Write stores schedule at path, creating missing directories.
	// It reports whether the file content changed.
	Write(path string, schedule domain.Schedule) (bool, error)
}
