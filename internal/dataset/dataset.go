package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// WeatherRecord is one day of observations; temperatures are Fahrenheit.
type WeatherRecord struct {
	Date string
	Low  int
	High int
}

// Dataset is the ordered set of records produced by a single load.
type Dataset struct {
	ID      string
	Source  string
	Records []WeatherRecord
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.Records) }

// Lows returns the low column, index-aligned with records.
func Lows(records []WeatherRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Low
	}
	return out
}

// Highs returns the high column, index-aligned with records.
func Highs(records []WeatherRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.High
	}
	return out
}

func newDataset(source string) *Dataset {
	return &Dataset{ID: uuid.NewString(), Source: source}
}

// Options controls how a source is decoded.
type Options struct {
	// Comma is the CSV field delimiter. If 0, ',' is used (tab for .tsv files).
	Comma rune
	// Sheet selects the XLSX worksheet; empty means the first sheet.
	Sheet string
}

// DefaultOptions returns options that pick the delimiter from the file type.
func DefaultOptions() Options {
	return Options{}
}

// ErrFieldCount is the cause of a MalformedRowError when a row does not have
// exactly date, low and high.
var ErrFieldCount = errors.New("expected 3 fields: date,low,high")

// MalformedRowError reports a non-blank row that cannot be decoded.
type MalformedRowError struct {
	Line   int
	Fields []string
	Err    error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row at line %d (%s): %v", e.Line, strings.Join(e.Fields, ","), e.Err)
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

// parseRow decodes the date, low and high fields of one row.
func parseRow(fields []string, line int) (WeatherRecord, error) {
	malformed := func(err error) error {
		return &MalformedRowError{Line: line, Fields: append([]string(nil), fields...), Err: err}
	}
	if len(fields) != 3 {
		return WeatherRecord{}, malformed(ErrFieldCount)
	}
	low, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return WeatherRecord{}, malformed(fmt.Errorf("low: %w", err))
	}
	high, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return WeatherRecord{}, malformed(fmt.Errorf("high: %w", err))
	}
	return WeatherRecord{Date: fields[0], Low: low, High: high}, nil
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}

// LoadFile opens path, selects a loader by file name and decodes the dataset.
// The file handle is released before LoadFile returns.
func LoadFile(path string, opt Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := loaderFor(path).Load(f, opt)
	if err != nil {
		return nil, err
	}
	ds.Source = filepath.Base(path)
	return ds, nil
}

// Load decodes comma-separated input from r.
func Load(r io.Reader, opt Options) (*Dataset, error) {
	return csvLoader{}.Load(r, opt)
}
