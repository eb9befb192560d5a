package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/StudioSol/set"
	"github.com/raykavin/linechart/pkg/core"
	"github.com/samber/lo"
	"github.com/xhit/go-str2duration/v2"
)

// Column names recognised in the long layout
const (
	ColumnSeries = "series"
	ColumnDate   = "date"
	ColumnValue  = "value"
)

// CSVOptions controls how a table is turned into series
type CSVOptions struct {
	// Comma is the field delimiter, ',' when zero
	Comma rune
	// Bucket groups dates into spans such as "1h", "1d" or "1w"; the last
	// value of a bucket wins. Empty keeps dates as they are.
	Bucket string
	// TimeLayout parses dates when bucketing, RFC3339 then 2006-01-02 when empty
	TimeLayout string
}

// ReadCSV reads series from a table in either layout:
//
//	wide: date,cpu,mem       one column per series
//	long: series,date,value  one row per point
//
// A first row made of a date followed by numbers is treated as data and the
// series are named after their column number.
func ReadCSV(r io.Reader, opts CSVOptions) ([]core.Series, error) {
	reader := csv.NewReader(r)
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return parseTable(rows, opts)
}

func parseTable(rows [][]string, opts CSVOptions) ([]core.Series, error) {
	rows = lo.Filter(rows, func(row []string, _ int) bool {
		return lo.SomeBy(row, func(cell string) bool { return strings.TrimSpace(cell) != "" })
	})
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	bucket, err := newBucketer(opts)
	if err != nil {
		return nil, err
	}

	var names []string
	header, hasHeader := parseHeader(rows[0])
	if hasHeader {
		names = lo.Map(rows[0], func(name string, _ int) string { return strings.TrimSpace(name) })
		rows = rows[1:]
	}

	b := newBuilder()
	if isLong(header) {
		err = readLong(b, rows, header, bucket)
	} else {
		err = readWide(b, rows, names, bucket)
	}
	if err != nil {
		return nil, err
	}
	return b.series(), nil
}

// parseHeader maps lower cased column names to their index.
// The row is data when every cell but the first is a number.
func parseHeader(row []string) (map[string]int, bool) {
	header := make(map[string]int, len(row))
	for i, name := range row {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	numeric := len(row) > 1 && lo.EveryBy(row[1:], func(cell string) bool {
		_, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		return err == nil
	})
	return header, !numeric
}

func isLong(header map[string]int) bool {
	_, hasSeries := header[ColumnSeries]
	_, hasDate := header[ColumnDate]
	_, hasValue := header[ColumnValue]
	return hasSeries && hasDate && hasValue
}

func readLong(b *builder, rows [][]string, header map[string]int, bucket bucketer) error {
	iSeries, iDate, iValue := header[ColumnSeries], header[ColumnDate], header[ColumnValue]
	width := max(iSeries, iDate, iValue) + 1

	for n, row := range rows {
		if len(row) < width {
			return fmt.Errorf("%w %d: expected %d columns, got %d", ErrMalformedRow, n+2, width, len(row))
		}
		value, err := parseValue(row[iValue])
		if err != nil {
			return fmt.Errorf("%w %d: %v", ErrMalformedRow, n+2, err)
		}
		date, err := bucket(row[iDate])
		if err != nil {
			return fmt.Errorf("%w %d: %v", ErrMalformedRow, n+2, err)
		}
		b.add(strings.TrimSpace(row[iSeries]), date, value)
	}
	return nil
}

// readWide names series after the header cells, or after the column number
// when the table has no header
func readWide(b *builder, rows [][]string, names []string, bucket bucketer) error {
	line := 1
	if names != nil {
		line = 2
	}
	for n, row := range rows {
		if len(row) < 2 {
			return fmt.Errorf("%w %d: expected a date and at least one value", ErrMalformedRow, n+line)
		}
		date, err := bucket(row[0])
		if err != nil {
			return fmt.Errorf("%w %d: %v", ErrMalformedRow, n+line, err)
		}

		for col := 1; col < len(row); col++ {
			if strings.TrimSpace(row[col]) == "" {
				continue
			}
			value, err := parseValue(row[col])
			if err != nil {
				return fmt.Errorf("%w %d: %v", ErrMalformedRow, n+line, err)
			}
			name := strconv.Itoa(col)
			if col < len(names) && names[col] != "" {
				name = names[col]
			}
			b.add(name, date, value)
		}
	}
	return nil
}

func parseValue(cell string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(cell), 64)
}

// bucketer normalises a date cell into the key used on the x axis
type bucketer func(cell string) (string, error)

func newBucketer(opts CSVOptions) (bucketer, error) {
	if opts.Bucket == "" {
		return func(cell string) (string, error) {
			return strings.TrimSpace(cell), nil
		}, nil
	}

	span, err := str2duration.ParseDuration(opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("invalid bucket %q: %w", opts.Bucket, err)
	}
	if span <= 0 {
		return nil, fmt.Errorf("invalid bucket %q: span must be positive", opts.Bucket)
	}

	layouts := []string{time.RFC3339, time.DateTime, time.DateOnly}
	if opts.TimeLayout != "" {
		layouts = []string{opts.TimeLayout}
	}
	output := time.DateOnly
	if span < 24*time.Hour {
		output = "2006-01-02 15:04"
	}

	return func(cell string) (string, error) {
		cell = strings.TrimSpace(cell)
		for _, layout := range layouts {
			if t, err := time.Parse(layout, cell); err == nil {
				return t.UTC().Truncate(span).Format(output), nil
			}
		}
		return "", fmt.Errorf("unparsable date %q", cell)
	}, nil
}

// builder collects points per series keeping first appearance order of
// series and of dates; a repeated date overwrites the earlier value
type builder struct {
	names  *set.LinkedHashSetString
	dates  map[string]*set.LinkedHashSetString
	values map[string]map[string]float64
}

func newBuilder() *builder {
	return &builder{
		names:  set.NewLinkedHashSetString(),
		dates:  make(map[string]*set.LinkedHashSetString),
		values: make(map[string]map[string]float64),
	}
}

func (b *builder) add(name, date string, value float64) {
	if _, ok := b.dates[name]; !ok {
		b.names.Add(name)
		b.dates[name] = set.NewLinkedHashSetString()
		b.values[name] = make(map[string]float64)
	}
	b.dates[name].Add(date)
	b.values[name][date] = value
}

func (b *builder) series() []core.Series {
	source := make([]core.Series, 0, len(b.dates))
	for name := range b.names.Iter() {
		s := core.Series{Name: name}
		for date := range b.dates[name].Iter() {
			s.Data = append(s.Data, core.Point{Date: date, Value: b.values[name][date]})
		}
		source = append(source, s)
	}
	return source
}
