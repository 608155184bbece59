package dataprep

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gota/gota/series"
)

// LabelEncoder maps a fixed, exhaustive set of category strings to integer
// codes. Anything outside the table is an error, never a default.
type LabelEncoder struct {
	codes map[string]int
}

// SpeciesEncoder returns the penguin species table.
func SpeciesEncoder() *LabelEncoder {
	return &LabelEncoder{codes: map[string]int{
		"Adelie":    1,
		"Chinstrap": 2,
		"Gentoo":    3,
	}}
}

// NewLabelEncoder builds an encoder from a label→code table. Codes must be
// distinct.
func NewLabelEncoder(codes map[string]int) (*LabelEncoder, error) {
	if len(codes) == 0 {
		return nil, errors.New("dataprep: empty label table")
	}
	seen := make(map[int]string, len(codes))
	table := make(map[string]int, len(codes))
	for label, code := range codes {
		if prev, ok := seen[code]; ok {
			return nil, fmt.Errorf("dataprep: labels %q and %q share code %d", prev, label, code)
		}
		seen[code] = label
		table[label] = code
	}
	return &LabelEncoder{codes: table}, nil
}

// Encode returns the code of label, widened to float64.
func (e *LabelEncoder) Encode(label string) (float64, error) {
	code, ok := e.codes[label]
	if !ok {
		return 0, &UnrecognizedLabelError{Row: -1, Label: label}
	}
	return float64(code), nil
}

// EncodeSeries encodes every element of s. The first missing or unknown
// element aborts the encoding.
func (e *LabelEncoder) EncodeSeries(s series.Series) ([]float64, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	na := s.IsNaN()
	labels := s.Records()
	out := make([]float64, len(labels))
	for i, label := range labels {
		if na[i] {
			return nil, &UnrecognizedLabelError{Row: i, Null: true}
		}
		code, ok := e.codes[label]
		if !ok {
			return nil, &UnrecognizedLabelError{Row: i, Label: label}
		}
		out[i] = float64(code)
	}
	return out, nil
}

// Decode maps a code back to its label.
func (e *LabelEncoder) Decode(code float64) (string, bool) {
	for label, c := range e.codes {
		if float64(c) == code {
			return label, true
		}
	}
	return "", false
}

// Classes returns the known labels ordered by code.
func (e *LabelEncoder) Classes() []string {
	labels := make([]string, 0, len(e.codes))
	for label := range e.codes {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return e.codes[labels[i]] < e.codes[labels[j]] })
	return labels
}
