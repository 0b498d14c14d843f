package loader

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/leengari/cleanr/internal/domain/errors"
)

// readDelimited reads every record of a delimited text file.
// All records must have the header's field count.
func readDelimited(path string, delimiter rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.LoadError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	br := bufio.NewReader(f)
	skipBOM(br)

	r := csv.NewReader(br)
	if delimiter != 0 {
		r.Comma = delimiter
	}
	r.FieldsPerRecord = 0 // header sets the field count

	records, err := r.ReadAll()
	if err != nil {
		return nil, &errors.LoadError{Path: path, Op: "read", Err: fmt.Errorf("%w: %v", errors.ErrParse, err)}
	}
	return records, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM drops a leading UTF-8 byte order mark
func skipBOM(br *bufio.Reader) {
	if lead, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
}
