package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// ColumnType is the declared type of a schema column.
type ColumnType int

const (
	Text ColumnType = iota
	Float
)

func (t ColumnType) String() string {
	switch t {
	case Text:
		return "text"
	case Float:
		return "float"
	}
	return fmt.Sprintf("ColumnType(%d)", int(t))
}

// ParseColumnType accepts "text"/"string" and "float"/"float64".
func ParseColumnType(s string) (ColumnType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "string", "utf8":
		return Text, nil
	case "float", "float64", "f64":
		return Float, nil
	}
	return 0, fmt.Errorf("unknown column type %q", s)
}

// Column is one named, typed field of a Schema.
type Column struct {
	Name string
	Type ColumnType
}

// Schema describes the structure of a dataset. Columns are applied by
// position, the file's own header row is skipped.
type Schema struct {
	Columns   []Column
	NAValues  []string // cell values treated as missing
	Delimiter rune
}

// DefaultNAValues are the markers treated as missing when a schema sets none.
var DefaultNAValues = []string{"NA", "NaN", ""}

// PenguinSchema returns the 7-column layout of penguins_size.csv.
func PenguinSchema() Schema {
	return Schema{
		Columns: []Column{
			{Name: "species", Type: Text},
			{Name: "island", Type: Text},
			{Name: "culmen_length_mm", Type: Float},
			{Name: "culmen_depth_mm", Type: Float},
			{Name: "flipper_length_mm", Type: Float},
			{Name: "body_mass_g", Type: Float},
			{Name: "sex", Type: Text},
		},
		NAValues:  append([]string(nil), DefaultNAValues...),
		Delimiter: ',',
	}
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Index returns the position of the named column, or -1.
func (s Schema) Index(name string) int {
	for i, c := range s.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Comma returns the field delimiter, defaulting to ','.
func (s Schema) Comma() rune {
	if s.Delimiter == 0 {
		return ','
	}
	return s.Delimiter
}

// Validate checks that the schema has at least one column and no duplicate
// or empty names.
func (s Schema) Validate() error {
	if len(s.Columns) == 0 {
		return errors.New("schema has no columns")
	}
	seen := make(map[string]struct{}, len(s.Columns))
	for i, c := range s.Columns {
		if c.Name == "" {
			return fmt.Errorf("schema column %d has no name", i)
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("schema column %q declared twice", c.Name)
		}
		if c.Type != Text && c.Type != Float {
			return fmt.Errorf("schema column %q: %v", c.Name, c.Type)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}
