package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"

	"penguinml/pkg/pipeline"
)

// ErrNoHeader is returned for input without even a header row.
var ErrNoHeader = errors.New("data: input has no header row")

const maxLineBytes = 1 << 20

// Load opens path and parses it under schema. Failing to open the file is
// the only I/O condition that aborts the load.
func Load(path string, schema pipeline.Schema, logger *zap.Logger) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer file.Close()

	return Read(file, schema, logger)
}

// Read parses delimited rows from r into a typed table. The first row is a
// header and is skipped; names and types come from the schema by position.
// Records with the wrong number of fields or broken quoting are skipped.
// Values that do not parse under a float column become missing.
func Read(r io.Reader, schema pipeline.Schema, logger *zap.Logger) (dataframe.DataFrame, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := schema.Validate(); err != nil {
		return dataframe.DataFrame{}, err
	}

	rows, skipped, err := scanRecords(r, schema, logger)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	var df dataframe.DataFrame
	if len(rows) == 0 {
		df = empty(schema)
	} else {
		records := append([][]string{schema.Names()}, rows...)
		df = dataframe.LoadRecords(records,
			dataframe.HasHeader(true),
			dataframe.DetectTypes(false),
			dataframe.DefaultType(series.String),
			dataframe.WithTypes(types(schema)),
			dataframe.NaNValues(naValues(schema)),
		)
	}
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("data: build table: %w", df.Err)
	}

	logger.Info("Loaded dataset",
		zap.Int("rows", df.Nrow()),
		zap.Int("columns", df.Ncol()),
		zap.Int("skipped", skipped))
	return df, nil
}

// scanRecords splits r into lines and parses each one on its own, so a
// broken quote costs only its own line. Blank lines are ignored; the first
// non-blank line is the header.
func scanRecords(r io.Reader, schema pipeline.Schema, logger *zap.Logger) ([][]string, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	width := len(schema.Columns)
	var rows [][]string
	header, skipped, line := true, 0, 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if header {
			header = false
			continue
		}

		reader := csv.NewReader(strings.NewReader(text))
		reader.Comma = schema.Comma()
		reader.FieldsPerRecord = -1
		rec, err := reader.Read()
		if err != nil {
			logger.Debug("Skipping malformed record", zap.Int("line", line), zap.Error(err))
			skipped++
			continue
		}
		if len(rec) != width {
			logger.Debug("Skipping record: field count mismatch",
				zap.Int("line", line),
				zap.Int("fields", len(rec)),
				zap.Int("want", width))
			skipped++
			continue
		}
		rows = append(rows, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("data: read: %w", err)
	}
	if header {
		return nil, 0, ErrNoHeader
	}
	return rows, skipped, nil
}

// SeriesType maps a schema column type onto the gota series type.
func SeriesType(t pipeline.ColumnType) series.Type {
	if t == pipeline.Float {
		return series.Float
	}
	return series.String
}

func types(schema pipeline.Schema) map[string]series.Type {
	out := make(map[string]series.Type, len(schema.Columns))
	for _, c := range schema.Columns {
		out[c.Name] = SeriesType(c.Type)
	}
	return out
}

func naValues(schema pipeline.Schema) []string {
	if schema.NAValues == nil {
		return pipeline.DefaultNAValues
	}
	return schema.NAValues
}

func empty(schema pipeline.Schema) dataframe.DataFrame {
	cols := make([]series.Series, len(schema.Columns))
	for i, c := range schema.Columns {
		cols[i] = series.New([]string{}, SeriesType(c.Type), c.Name)
	}
	return dataframe.New(cols...)
}
