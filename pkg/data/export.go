package data

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"penguinml/pkg/core"
)

// ExportOrder is the layout produced by Export. gota keeps one series per
// column, so the natural linearization is column-major.
const ExportOrder = core.ColumnMajor

// Export linearizes a table of float columns, column after column, in the
// table's column order. Feed the result to core.Reflow with ExportOrder.
func Export(df dataframe.DataFrame) (flat []float64, rows, cols int, err error) {
	if df.Err != nil {
		return nil, 0, 0, df.Err
	}
	rows, cols = df.Dims()
	flat = make([]float64, 0, rows*cols)
	for _, name := range df.Names() {
		s := df.Col(name)
		if s.Type() != series.Float {
			return nil, 0, 0, fmt.Errorf("data: export: column %q is %s, want %s", name, s.Type(), series.Float)
		}
		flat = append(flat, s.Float()...)
	}
	return flat, rows, cols, nil
}
