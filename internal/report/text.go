// Package report renders pipeline events as a human-readable text report.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leengari/cleanr/internal/domain/dataset"
	"github.com/leengari/cleanr/internal/pipeline"
)

// TextReporter is a pipeline observer that writes progress and summaries to w
type TextReporter struct {
	w       io.Writer
	heading *color.Color
	warning *color.Color
	err     error
}

// NewTextReporter creates a reporter writing to w. Colors are disabled when
// noColor is set, or when color output is globally disabled.
func NewTextReporter(w io.Writer, noColor bool) *TextReporter {
	r := &TextReporter{
		w:       w,
		heading: color.New(color.FgCyan, color.Bold),
		warning: color.New(color.FgYellow),
	}
	if noColor {
		r.heading.DisableColor()
		r.warning.DisableColor()
	}
	return r
}

// Err returns the first write error, if any
func (r *TextReporter) Err() error {
	return r.err
}

// OnEvent implements pipeline.Observer
func (r *TextReporter) OnEvent(event pipeline.Event) {
	switch event.Type {
	case pipeline.EventStageStart:
		switch event.Stage {
		case pipeline.StageImpute:
			r.section("Cleaning missing values...")
		case pipeline.StageOutliers:
			r.section("Removing outliers using Z-score method...")
		}

	case pipeline.EventStageEnd:
		switch data := event.Data.(type) {
		case pipeline.Summary:
			r.summary(data)
		case pipeline.ImputeReport:
			r.imputation(data)
		case pipeline.DuplicateReport:
			r.section(fmt.Sprintf("Removed %s duplicate rows.", humanize.Comma(int64(data.Removed))))
		case pipeline.OutlierReport:
			r.outliers(data)
		}

	case pipeline.EventRunEnd:
		if shape, ok := event.Data.(pipeline.Shape); ok {
			r.section(fmt.Sprintf("Done: %s rows x %d columns (run %s)",
				humanize.Comma(int64(shape.Rows)), shape.Columns, event.RunID))
		}
	}
}

func (r *TextReporter) summary(s pipeline.Summary) {
	r.section(fmt.Sprintf("FIRST %d ROWS", s.Head.NumRows()))
	r.printf("%s\n", headTable(s.Head))

	r.section("COLUMN TYPES")
	kinds := newTable()
	kinds.AppendHeader(table.Row{"column", "kind"})
	for _, k := range s.Kinds {
		kinds.AppendRow(table.Row{k.Name, k.Kind})
	}
	r.printf("%s\n", kinds.Render())

	r.section("MISSING VALUES")
	nulls := newTable()
	nulls.AppendHeader(table.Row{"column", "missing"})
	for _, n := range s.Nulls {
		nulls.AppendRow(table.Row{n.Name, humanize.Comma(int64(n.Missing))})
	}
	r.printf("%s\n", nulls.Render())

	r.section("DUPLICATE ROWS")
	r.printf("%s\n", humanize.Comma(int64(s.Duplicates)))
}

func (r *TextReporter) imputation(rep pipeline.ImputeReport) {
	for _, f := range rep.Fills {
		switch f.Kind {
		case dataset.KindNumeric:
			v, _ := f.Value.Float()
			r.printf("  > Filled numeric '%s' with mean: %.2f (%s cells)\n", f.Column, v, humanize.Comma(int64(f.Count)))
		default:
			r.printf("  > Filled text '%s' with mode: %s (%s cells)\n", f.Column, f.Value, humanize.Comma(int64(f.Count)))
		}
	}
	r.warnings(rep.Warnings)
}

func (r *TextReporter) outliers(rep pipeline.OutlierReport) {
	r.printf("  > Removed %s rows as outliers (threshold %g).\n", humanize.Comma(int64(rep.Removed)), rep.Threshold)
	r.warnings(rep.Warnings)
}

func (r *TextReporter) warnings(warnings []error) {
	for _, w := range warnings {
		if r.err != nil {
			return
		}
		_, r.err = r.warning.Fprintf(r.w, "  ! %v\n", w)
	}
}

func (r *TextReporter) section(title string) {
	if r.err != nil {
		return
	}
	_, r.err = r.heading.Fprintf(r.w, "\n%s\n", title)
}

func (r *TextReporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// headTable renders the preview rows with a leading row index
func headTable(ds *dataset.Dataset) string {
	t := newTable()

	header := table.Row{""}
	for _, name := range ds.ColumnNames() {
		header = append(header, name)
	}
	t.AppendHeader(header)

	for i := 0; i < ds.NumRows(); i++ {
		row := table.Row{strconv.Itoa(i)}
		for _, cell := range ds.Row(i) {
			row = append(row, formatCell(cell))
		}
		t.AppendRow(row)
	}
	return t.Render()
}

func formatCell(c dataset.Cell) string {
	if v, ok := c.Float(); ok {
		return humanize.Ftoa(v)
	}
	return c.String()
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	return t
}
