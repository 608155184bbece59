package dataprep

import (
	"github.com/go-gota/gota/dataframe"
)

// DropMissing removes every row that has a missing value in any column.
// Nothing is imputed.
func DropMissing(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, df.Err
	}

	n := df.Nrow()
	missing := make([]bool, n)
	for _, name := range df.Names() {
		for i, na := range df.Col(name).IsNaN() {
			if na {
				missing[i] = true
			}
		}
	}

	keep := make([]int, 0, n)
	for i, m := range missing {
		if !m {
			keep = append(keep, i)
		}
	}
	if len(keep) == n {
		return df, nil
	}

	out := df.Subset(keep)
	return out, out.Err
}

// CountMissing returns the number of missing cells per column.
func CountMissing(df dataframe.DataFrame) map[string]int {
	counts := make(map[string]int, df.Ncol())
	for _, name := range df.Names() {
		for _, na := range df.Col(name).IsNaN() {
			if na {
				counts[name]++
			}
		}
	}
	return counts
}
