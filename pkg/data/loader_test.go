package data

import (
	"io/fs"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"penguinml/pkg/core"
	"penguinml/pkg/pipeline"
)

const sample = `species,island,culmen_length_mm,culmen_depth_mm,flipper_length_mm,body_mass_g,sex
Adelie,Torgersen,39.1,18.7,181,3750,MALE
Adelie,Torgersen,NA,NA,NA,NA,NA
Chinstrap,Dream,46.5,17.9,192,3500,FEMALE
Gentoo,Biscoe,46.1,13.2,211,oops,FEMALE
Gentoo,Biscoe,50.0
Gentoo,Biscoe,50.0,15.2,218,5700,MALE
`

func TestReadAppliesSchema(t *testing.T) {
	df, err := Read(strings.NewReader(sample), pipeline.PenguinSchema(), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, 5, df.Nrow(), "short record is skipped, header is not a row")
	assert.Equal(t, pipeline.PenguinSchema().Names(), df.Names())
	assert.Equal(t, series.String, df.Col("species").Type())
	assert.Equal(t, series.Float, df.Col("body_mass_g").Type())

	assert.Equal(t, []string{"Adelie", "Adelie", "Chinstrap", "Gentoo", "Gentoo"}, df.Col("species").Records())
	assert.Equal(t, 39.1, df.Col("culmen_length_mm").Float()[0])

	mass := df.Col("body_mass_g").IsNaN()
	assert.Equal(t, []bool{false, true, false, true, false}, mass, "NA and unparseable values are missing")
	assert.True(t, df.Col("sex").IsNaN()[1])
}

func TestReadIgnoresHeaderNames(t *testing.T) {
	in := "a;b\nx;1.5\ny;2.5\n"
	schema := pipeline.Schema{
		Columns:   []pipeline.Column{{Name: "label", Type: pipeline.Text}, {Name: "value", Type: pipeline.Float}},
		Delimiter: ';',
	}
	df, err := Read(strings.NewReader(in), schema, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"label", "value"}, df.Names())
	assert.Equal(t, []float64{1.5, 2.5}, df.Col("value").Float())
}

func TestReadHeaderOnly(t *testing.T) {
	df, err := Read(strings.NewReader("species,island,a,b,c,d,sex\n"), pipeline.PenguinSchema(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, df.Nrow())
	assert.Equal(t, 7, df.Ncol())
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader(""), pipeline.PenguinSchema(), nil)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadRejectsBadSchema(t *testing.T) {
	_, err := Read(strings.NewReader(sample), pipeline.Schema{}, nil)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), pipeline.PenguinSchema(), nil)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadSampleFile(t *testing.T) {
	df, err := Load(filepath.Join("..", "train", "testdata", "penguins_sample.csv"), pipeline.PenguinSchema(), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, 49, df.Nrow())
}

func TestExportIsColumnMajor(t *testing.T) {
	df, err := Read(strings.NewReader(sample), pipeline.PenguinSchema(), nil)
	require.NoError(t, err)
	features := df.Select([]string{"culmen_length_mm", "flipper_length_mm"})

	flat, rows, cols, err := Export(features)
	require.NoError(t, err)
	require.Equal(t, 5, rows)
	require.Equal(t, 2, cols)
	assert.Equal(t, core.ColumnMajor, ExportOrder)
	// First the whole culmen column, then the flipper column.
	assert.Equal(t, 39.1, flat[0])
	assert.Equal(t, 46.5, flat[2])
	assert.Equal(t, 181.0, flat[5])

	m, err := core.Reflow(flat, rows, cols, ExportOrder)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j, name := range features.Names() {
			want := features.Col(name).Float()[i]
			if math.IsNaN(want) {
				assert.True(t, math.IsNaN(m.At(i, j)))
				continue
			}
			assert.Equal(t, want, m.At(i, j))
		}
	}
}

func TestExportRejectsText(t *testing.T) {
	df, err := Read(strings.NewReader(sample), pipeline.PenguinSchema(), nil)
	require.NoError(t, err)
	_, _, _, err = Export(df.Select([]string{"species"}))
	assert.Error(t, err)
}

func TestReadBadQuoteSkipsOnlyItsLine(t *testing.T) {
	header := "species,island,culmen_length_mm,culmen_depth_mm,flipper_length_mm,body_mass_g,sex\n"
	good := "Adelie,Dream,37.2,18.1,178,3900,MALE\nGentoo,Biscoe,47.3,15.3,222,5250,MALE\n"

	for name, bad := range map[string]string{
		"text after quote": "Adelie,\"Torg\"ersen,1,1,1,1,MALE\n",
		"unterminated":     "Adelie,\"Torgersen,1,1,1,1,MALE\n",
		"bare quote":       "Adelie,Torg\"ersen,1,1,1,1,MALE\n",
	} {
		t.Run(name, func(t *testing.T) {
			in := header + good + bad + good
			rows, skipped, err := scanRecords(strings.NewReader(in), pipeline.PenguinSchema(), zaptest.NewLogger(t))
			require.NoError(t, err)
			assert.Len(t, rows, 4)
			assert.Equal(t, 1, skipped)

			df, err := Read(strings.NewReader(in), pipeline.PenguinSchema(), nil)
			require.NoError(t, err)
			assert.Equal(t, []string{"Adelie", "Gentoo", "Adelie", "Gentoo"}, df.Col("species").Records())
		})
	}
}

func TestReadQuotedFieldsAndBlankLines(t *testing.T) {
	in := "species,island,a,b,c,d,sex\n\n\"Chinstrap\",\"Dream, North\",49.5,19,200,3800,MALE\r\n\nAdelie,Biscoe,1,2,3,4,FEMALE\n"
	rows, skipped, err := scanRecords(strings.NewReader(in), pipeline.PenguinSchema(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, rows, 2)
	assert.Equal(t, "Dream, North", rows[0][1])
	assert.Equal(t, "MALE", rows[0][6])
}

func TestReadCountsShortRecords(t *testing.T) {
	_, skipped, err := scanRecords(strings.NewReader(sample), pipeline.PenguinSchema(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
}
