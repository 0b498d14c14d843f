package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/leengari/cleanr/internal/domain/dataset"
	"github.com/leengari/cleanr/internal/domain/errors"
)

// build turns raw records (header first) into a typed dataset
func build(records [][]string, missing map[string]struct{}) (*dataset.Dataset, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, errors.ErrEmptyInput
	}

	header := headerNames(records[0])
	body := records[1:]
	columns := make([]dataset.Column, len(header))

	for j, name := range header {
		raw := make([]string, len(body))
		for i, rec := range body {
			raw[i] = strings.TrimSpace(rec[j])
		}
		columns[j] = inferColumn(name, raw, missing)
	}

	return dataset.New(columns...)
}

// inferColumn makes a NUMERIC column when every non-missing cell parses as a
// number, a CATEGORICAL column otherwise. A column with no values is NUMERIC.
func inferColumn(name string, raw []string, missing map[string]struct{}) dataset.Column {
	cells := make([]dataset.Cell, len(raw))
	numeric := true

	for i, s := range raw {
		if _, isMissing := missing[s]; isMissing {
			cells[i] = dataset.NA()
			continue
		}
		v, ok := parseNumber(s)
		if !ok {
			numeric = false
			break
		}
		cells[i] = dataset.Num(v)
	}

	if numeric {
		return dataset.NewNumeric(name, cells...)
	}

	for i, s := range raw {
		if _, isMissing := missing[s]; isMissing {
			cells[i] = dataset.NA()
			continue
		}
		cells[i] = dataset.Text(s)
	}
	return dataset.NewCategorical(name, cells...)
}

// parseNumber reads s as a float. Values beyond the float64 range become ±Inf.
func parseNumber(s string) (float64, bool) {
	if v, err := cast.ToFloat64E(s); err == nil {
		return v, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return v, true
	}
	return 0, false
}

// headerNames names blank headers "Unnamed: i" and suffixes repeated
// names with ".1", ".2", ... so every column name is unique
func headerNames(raw []string) []string {
	names := make([]string, len(raw))
	taken := make(map[string]bool, len(raw))
	next := make(map[string]int)

	for i, h := range raw {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		base := name
		for taken[name] {
			next[base]++
			name = base + "." + strconv.Itoa(next[base])
		}
		taken[name] = true
		names[i] = name
	}
	return names
}
