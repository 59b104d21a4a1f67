package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

type csvLoader struct{}

func (csvLoader) CanLoad(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".txt")
}

func (csvLoader) Load(r io.Reader, opt Options) (*Dataset, error) {
	return readDelimited(r, opt, ',')
}

type tsvLoader struct{}

func (tsvLoader) CanLoad(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".tsv")
}

func (tsvLoader) Load(r io.Reader, opt Options) (*Dataset, error) {
	return readDelimited(r, opt, '\t')
}

// readDelimited discards the first physical line as the header, skips blank
// lines and decodes every remaining row. The first bad row aborts the load.
func readDelimited(in io.Reader, opt Options, defaultComma rune) (*Dataset, error) {
	ds := newDataset("")
	br := bufio.NewReader(in)
	if _, err := br.ReadString('\n'); err != nil {
		if errors.Is(err, io.EOF) {
			return ds, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	r := csv.NewReader(br)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	r.Comma = defaultComma
	if opt.Comma != 0 {
		r.Comma = opt.Comma
	}

	// line numbers reported by r are relative to the body
	const headerLines = 1
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &MalformedRowError{Line: pe.Line + headerLines, Err: pe.Err}
			}
			return nil, fmt.Errorf("read row %d: %w", len(ds.Records)+2, err)
		}
		line, _ := r.FieldPos(0)
		wr, err := parseRow(rec, line+headerLines)
		if err != nil {
			return nil, err
		}
		ds.Records = append(ds.Records, wr)
	}
	return ds, nil
}
