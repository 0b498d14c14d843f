// Package metrics exposes cleaning runs as prometheus metrics.
//
// A run is a one-shot process, so instead of serving a scrape endpoint the
// collected metrics can be written in the text exposition format for the
// node_exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/leengari/cleanr/internal/pipeline"
)

const namespace = "cleanr"

// Observer records pipeline events into its own prometheus registry
type Observer struct {
	registry *prometheus.Registry

	runs          prometheus.Counter
	rowsRemoved   *prometheus.CounterVec
	cellsImputed  *prometheus.CounterVec
	warnings      *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	datasetRows   *prometheus.GaugeVec
}

// NewObserver creates an observer with a fresh registry
func NewObserver() *Observer {
	o := &Observer{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed cleaning runs.",
		}),
		rowsRemoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_removed_total",
			Help:      "Rows dropped, by stage.",
		}, []string{"stage"}),
		cellsImputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_imputed_total",
			Help:      "Missing cells filled, by column kind.",
		}, []string{"kind"}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "data_quality_warnings_total",
			Help:      "Data quality conditions handled locally, by stage.",
		}, []string{"stage"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Time spent in each stage.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"stage"}),
		datasetRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Row count of the last run's input and output.",
		}, []string{"phase"}),
	}

	o.registry.MustRegister(o.runs, o.rowsRemoved, o.cellsImputed, o.warnings, o.stageDuration, o.datasetRows)
	return o
}

// Registry returns the registry the observer records into
func (o *Observer) Registry() *prometheus.Registry {
	return o.registry
}

// OnEvent implements pipeline.Observer
func (o *Observer) OnEvent(event pipeline.Event) {
	switch event.Type {
	case pipeline.EventRunStart:
		if shape, ok := event.Data.(pipeline.Shape); ok {
			o.datasetRows.WithLabelValues("input").Set(float64(shape.Rows))
		}

	case pipeline.EventRunEnd:
		o.runs.Inc()
		if shape, ok := event.Data.(pipeline.Shape); ok {
			o.datasetRows.WithLabelValues("output").Set(float64(shape.Rows))
		}

	case pipeline.EventStageEnd:
		o.stageDuration.WithLabelValues(event.Stage).Observe(event.Elapsed.Seconds())

		switch data := event.Data.(type) {
		case pipeline.ImputeReport:
			for _, f := range data.Fills {
				o.cellsImputed.WithLabelValues(string(f.Kind)).Add(float64(f.Count))
			}
			o.warnings.WithLabelValues(event.Stage).Add(float64(len(data.Warnings)))
		case pipeline.DuplicateReport:
			o.rowsRemoved.WithLabelValues(event.Stage).Add(float64(data.Removed))
		case pipeline.OutlierReport:
			o.rowsRemoved.WithLabelValues(event.Stage).Add(float64(data.Removed))
			o.warnings.WithLabelValues(event.Stage).Add(float64(len(data.Warnings)))
		}
	}
}

// WriteTextfile writes the current metrics to path in the text exposition format
func (o *Observer) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, o.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
