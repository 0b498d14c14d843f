package pipeline

import "time"

// EventType represents the lifecycle phases of a cleaning run
type EventType string

const (
	EventRunStart   EventType = "run_start"
	EventStageStart EventType = "stage_start"
	EventStageEnd   EventType = "stage_end"
	EventRunEnd     EventType = "run_end"
)

// Shape is the size of a dataset at some point of a run
type Shape struct {
	Rows    int
	Columns int
}

// Event represents a lifecycle event of a cleaning run.
//
// Data carries phase-specific payload:
//   - run_start, run_end: Shape of the input / final dataset
//   - stage_start: nil
//   - stage_end: Summary, ImputeReport, DuplicateReport or OutlierReport
type Event struct {
	Type      EventType
	RunID     string
	Stage     string        // empty for run events
	Timestamp time.Time     // when the event occurred
	Elapsed   time.Duration // set on stage_end and run_end
	Data      interface{}
}

// Observer interface for event subscribers.
// Observers receive events synchronously, in order.
type Observer interface {
	OnEvent(event Event)
}
