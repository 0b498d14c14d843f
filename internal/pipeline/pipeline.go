// Package pipeline implements the cleaning stages and the pipeline that runs them.
//
// Stages are pure functions from one Dataset to the next. The Pipeline runs
// them in a fixed order and reports progress to its Observers; no stage
// writes output on its own.
package pipeline

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/cleanr/internal/domain/dataset"
)

// Stage names, in execution order
const (
	StageSummary     = "summary"
	StageImpute      = "impute"
	StageDeduplicate = "deduplicate"
	StageOutliers    = "outliers"
)

// ErrNoDataset is returned when a run is started without a dataset
var ErrNoDataset = errors.New("pipeline: no dataset to clean")

// Pipeline runs summary, imputation, duplicate removal and outlier filtering in order
type Pipeline struct {
	threshold float64
	headRows  int
	observers []Observer
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithThreshold sets the z-score threshold of the outlier filter
func WithThreshold(threshold float64) Option {
	return func(p *Pipeline) {
		p.threshold = threshold
	}
}

// WithHeadRows sets how many rows the summary previews
func WithHeadRows(n int) Option {
	return func(p *Pipeline) {
		p.headRows = n
	}
}

// WithObserver registers an observer at construction time
func WithObserver(o Observer) Option {
	return func(p *Pipeline) {
		p.AddObserver(o)
	}
}

// New creates a Pipeline with the default threshold and preview size
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		threshold: DefaultThreshold,
		headRows:  DefaultHeadRows,
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Threshold returns the configured z-score threshold
func (p *Pipeline) Threshold() float64 {
	return p.threshold
}

// Result holds every stage report of a run and the cleaned dataset
type Result struct {
	RunID      string
	Summary    Summary
	Imputation ImputeReport
	Duplicates DuplicateReport
	Outliers   OutlierReport
	Dataset    *dataset.Dataset
}

// Warnings returns the data quality warnings of all stages in stage order
func (r *Result) Warnings() []error {
	var all []error
	all = append(all, r.Imputation.Warnings...)
	all = append(all, r.Outliers.Warnings...)
	return all
}

// Run executes all four stages on ds
func (p *Pipeline) Run(ds *dataset.Dataset) (*Result, error) {
	if ds == nil {
		return nil, ErrNoDataset
	}

	res := &Result{RunID: uuid.NewString()}
	start := time.Now()
	p.notify(Event{Type: EventRunStart, RunID: res.RunID, Data: shapeOf(ds)})

	// 1. Summary (read-only)
	p.stage(res.RunID, StageSummary, func() interface{} {
		res.Summary = Summarize(ds, p.headRows)
		return res.Summary
	})

	// 2. Missing values
	cur := ds
	p.stage(res.RunID, StageImpute, func() interface{} {
		cur, res.Imputation = ImputeMissing(cur)
		return res.Imputation
	})

	// 3. Exact duplicates
	p.stage(res.RunID, StageDeduplicate, func() interface{} {
		cur, res.Duplicates = RemoveDuplicates(cur)
		return res.Duplicates
	})

	// 4. Outliers
	p.stage(res.RunID, StageOutliers, func() interface{} {
		cur, res.Outliers = RemoveOutliers(cur, p.threshold)
		return res.Outliers
	})

	res.Dataset = cur
	p.notify(Event{Type: EventRunEnd, RunID: res.RunID, Elapsed: time.Since(start), Data: shapeOf(cur)})
	return res, nil
}

// Summarize runs only the summary stage on ds
func (p *Pipeline) Summarize(ds *dataset.Dataset) (Summary, error) {
	if ds == nil {
		return Summary{}, ErrNoDataset
	}

	runID := uuid.NewString()
	start := time.Now()
	p.notify(Event{Type: EventRunStart, RunID: runID, Data: shapeOf(ds)})

	var s Summary
	p.stage(runID, StageSummary, func() interface{} {
		s = Summarize(ds, p.headRows)
		return s
	})

	p.notify(Event{Type: EventRunEnd, RunID: runID, Elapsed: time.Since(start), Data: shapeOf(ds)})
	return s, nil
}

// stage wraps fn with stage_start and stage_end events
func (p *Pipeline) stage(runID, name string, fn func() interface{}) {
	p.notify(Event{Type: EventStageStart, RunID: runID, Stage: name})
	start := time.Now()
	data := fn()
	p.notify(Event{Type: EventStageEnd, RunID: runID, Stage: name, Elapsed: time.Since(start), Data: data})
}

// AddObserver registers an observer to receive lifecycle events
func (p *Pipeline) AddObserver(observer Observer) {
	p.observers = append(p.observers, observer)
}

// RemoveObserver unregisters an observer
func (p *Pipeline) RemoveObserver(observer Observer) {
	for i, o := range p.observers {
		if o == observer {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (p *Pipeline) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range p.observers {
		observer.OnEvent(event)
	}
}

func shapeOf(ds *dataset.Dataset) Shape {
	return Shape{Rows: ds.NumRows(), Columns: ds.NumColumns()}
}
