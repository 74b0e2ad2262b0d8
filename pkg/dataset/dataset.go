// Package dataset loads labeled text examples from CSV files and feeds them
// into a spam checker.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrMalformedRecord is returned for rows missing the label or text column.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnsupportedEncoding is returned for unknown Options.Encoding values.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// Record is one labeled example.
type Record struct {
	Line  int
	Label string
	Text  string
}

// Options controls how CSV rows are turned into records.
type Options struct {
	Encoding    string // "", utf-8, latin1, windows-1252
	HasHeader   bool
	LabelColumn int
	TextColumn  int
}

// DefaultOptions matches the layout of the SMS spam collection: label in the
// first column, text in the second, Latin-1 encoded.
func DefaultOptions() Options {
	return Options{
		Encoding:    "latin1",
		LabelColumn: 0,
		TextColumn:  1,
	}
}

// Load reads records from CSV data. Rows may have any number of fields as
// long as the label and text columns are present.
func Load(r io.Reader, opts Options) ([]Record, error) {
	if opts.LabelColumn < 0 || opts.TextColumn < 0 {
		return nil, fmt.Errorf("%w: negative column index", ErrMalformedRecord)
	}

	decoded, err := decode(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	need := max(opts.LabelColumn, opts.TextColumn) + 1
	var records []Record
	first := true

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}

		if first {
			first = false
			if opts.HasHeader {
				continue
			}
		}

		line, _ := reader.FieldPos(0)
		if len(row) < need {
			return nil, fmt.Errorf("%w: line %d has %d fields, need %d", ErrMalformedRecord, line, len(row), need)
		}

		records = append(records, Record{
			Line:  line,
			Label: row[opts.LabelColumn],
			Text:  row[opts.TextColumn],
		})
	}

	return records, nil
}

// LoadFile reads records from a CSV file.
func LoadFile(path string, opts Options) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	records, err := Load(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func decode(r io.Reader, encoding string) (io.Reader, error) {
	switch encoding {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	case "windows-1252":
		return charmap.Windows1252.NewDecoder().Reader(r), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, encoding)
	}
}
