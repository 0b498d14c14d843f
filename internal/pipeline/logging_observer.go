package pipeline

import (
	"context"
	"log/slog"
)

// LoggingObserver logs every lifecycle event using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer. A nil logger uses slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface.
// Start events are logged at debug level, end events at info level.
func (lo *LoggingObserver) OnEvent(event Event) {
	level := slog.LevelInfo
	if event.Type == EventRunStart || event.Type == EventStageStart {
		level = slog.LevelDebug
	}

	attrs := []any{
		slog.String("event", string(event.Type)),
		slog.String("run_id", event.RunID),
	}
	if event.Stage != "" {
		attrs = append(attrs, slog.String("stage", event.Stage))
	}
	if event.Elapsed > 0 {
		attrs = append(attrs, slog.Duration("elapsed", event.Elapsed))
	}

	switch data := event.Data.(type) {
	case Shape:
		attrs = append(attrs, slog.Int("rows", data.Rows), slog.Int("columns", data.Columns))
	case Summary:
		attrs = append(attrs,
			slog.Int("rows", data.Rows),
			slog.Int("missing_cells", data.TotalMissing()),
			slog.Int("duplicates", data.Duplicates),
		)
	case ImputeReport:
		attrs = append(attrs, slog.Int("columns_filled", len(data.Fills)), slog.Int("cells_filled", data.Filled()))
		lo.warn(event, data.Warnings)
	case DuplicateReport:
		attrs = append(attrs, slog.Int("removed", data.Removed), slog.Int("rows", data.After))
	case OutlierReport:
		attrs = append(attrs,
			slog.Float64("threshold", data.Threshold),
			slog.Int("removed", data.Removed),
			slog.Int("rows", data.After),
		)
		lo.warn(event, data.Warnings)
	}

	lo.logger.Log(context.Background(), level, "cleaning_lifecycle", attrs...)
}

func (lo *LoggingObserver) warn(event Event, warnings []error) {
	for _, w := range warnings {
		lo.logger.Warn("data quality warning",
			slog.String("run_id", event.RunID),
			slog.String("stage", event.Stage),
			slog.Any("error", w),
		)
	}
}
