// Package dataset reads chart series from JSON, CSV and XLSX files and from HTTP endpoints.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/raykavin/linechart/pkg/core"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrMalformedRow      = errors.New("malformed row")
	ErrEmptyTable        = errors.New("table has no rows")
	ErrInvalidJSON       = errors.New("invalid json dataset")
)

// LoadOptions groups the settings of every loader used by Load
type LoadOptions struct {
	CSV   CSVOptions
	Sheet string
	Fetch FetchOptions
}

// ReadJSON decodes [{"name": "...", "data": [{"date": "...", "value": 1}]}]
func ReadJSON(r io.Reader) ([]core.Series, error) {
	var source []core.Series
	if err := json.NewDecoder(r).Decode(&source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return source, nil
}

// Load reads a dataset from a file path or an http(s) URL, picking the
// reader from the scheme and the file extension
func Load(ctx context.Context, location string, opts LoadOptions) ([]core.Series, error) {
	if u, err := url.Parse(location); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return Fetch(ctx, location, opts.Fetch)
	}

	switch ext := strings.ToLower(filepath.Ext(location)); ext {
	case ".xlsx", ".xlsm":
		return ReadXLSX(location, opts.Sheet, opts.CSV)
	case ".json", ".csv":
		file, err := os.Open(location)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		if ext == ".json" {
			return ReadJSON(file)
		}
		return ReadCSV(file, opts.CSV)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, location)
	}
}
