// Package loader reads delimited text files and spreadsheets into datasets.
package loader

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leengari/cleanr/internal/domain/dataset"
	"github.com/leengari/cleanr/internal/domain/errors"
)

// DefaultMissingTokens are the cell contents read as MISSING
var DefaultMissingTokens = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a", "nan", "null",
}

// Options controls how an input is parsed
type Options struct {
	// Delimiter for delimited text. If 0, ',' is used, or '\t' for .tsv files.
	Delimiter rune
	// Sheet to read from a spreadsheet. If empty, the first sheet is used.
	Sheet string
	// MissingTokens overrides DefaultMissingTokens when non-nil.
	MissingTokens []string
	// Logger receives load progress. If nil, slog.Default() is used.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o Options) missingSet() map[string]struct{} {
	tokens := o.MissingTokens
	if tokens == nil {
		tokens = DefaultMissingTokens
	}
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// Load reads the dataset at path. Spreadsheets (.xlsx, .xlsm) are read with
// the first row as header; anything else is parsed as delimited text.
// Every failure is a *errors.LoadError.
func Load(path string, opts Options) (*dataset.Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.LoadError{Path: path, Op: "stat", Err: errors.ErrNotFound}
		}
		return nil, &errors.LoadError{Path: path, Op: "stat", Err: err}
	}
	if info.IsDir() {
		return nil, &errors.LoadError{Path: path, Op: "stat", Err: fmt.Errorf("%w: is a directory", fs.ErrInvalid)}
	}

	var records [][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		records, err = readSheet(path, opts.Sheet)
	case ".tsv":
		if opts.Delimiter == 0 {
			opts.Delimiter = '\t'
		}
		records, err = readDelimited(path, opts.Delimiter)
	default:
		records, err = readDelimited(path, opts.Delimiter)
	}
	if err != nil {
		return nil, err
	}

	ds, err := build(records, opts.missingSet())
	if err != nil {
		return nil, &errors.LoadError{Path: path, Op: "parse", Err: err}
	}

	opts.logger().Info("dataset loaded",
		slog.String("path", path),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumColumns()),
	)

	return ds, nil
}
