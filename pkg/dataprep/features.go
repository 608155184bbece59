package dataprep

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// PenguinFeatures are the numeric measurements used as model inputs, in
// matrix column order.
var PenguinFeatures = []string{
	"culmen_length_mm",
	"culmen_depth_mm",
	"flipper_length_mm",
	"body_mass_g",
}

// PenguinTarget is the categorical column being predicted.
const PenguinTarget = "species"

// SplitFeaturesTarget projects df onto the feature columns, in the order
// given, and onto the target column. Both keep df's row order.
func SplitFeaturesTarget(df dataframe.DataFrame, features []string, target string) (dataframe.DataFrame, series.Series, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, series.Series{}, df.Err
	}
	has := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		has[name] = true
	}
	for _, name := range features {
		if !has[name] {
			return dataframe.DataFrame{}, series.Series{}, &MissingColumnError{Name: name}
		}
		if t := df.Col(name).Type(); t != series.Float {
			return dataframe.DataFrame{}, series.Series{}, &ColumnTypeError{Name: name, Type: string(t)}
		}
	}
	if !has[target] {
		return dataframe.DataFrame{}, series.Series{}, &MissingColumnError{Name: target}
	}

	X := df.Select(features)
	if X.Err != nil {
		return dataframe.DataFrame{}, series.Series{}, X.Err
	}
	return X, df.Col(target).Copy(), nil
}
