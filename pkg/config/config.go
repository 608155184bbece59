package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"penguinml/pkg/dataprep"
	"penguinml/pkg/pipeline"
	"penguinml/pkg/train"
)

// Config holds every knob of a run. The zero-argument invocation uses
// Default(), which reproduces the fixed penguin setup.
type Config struct {
	DataPath     string  `yaml:"data_path"`
	TestFraction float64 `yaml:"test_fraction"`
	Shuffle      bool    `yaml:"shuffle"`
	// Seed fixes the train/test split; unset means a new seed per run.
	Seed        *uint64 `yaml:"seed,omitempty"`
	Standardize bool    `yaml:"standardize"`

	Schema   SchemaConfig   `yaml:"schema"`
	Features []string       `yaml:"features"`
	Target   string         `yaml:"target"`
	Labels   map[string]int `yaml:"labels"`

	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// SchemaConfig is the on-disk form of pipeline.Schema.
type SchemaConfig struct {
	Columns   []ColumnConfig `yaml:"columns"`
	NAValues  []string       `yaml:"na_values"`
	Delimiter string         `yaml:"delimiter"`
}

type ColumnConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// ReportConfig controls optional outputs beyond the metric lines.
type ReportConfig struct {
	// PlotPath, when set, receives a scatter plot of test predictions.
	PlotPath string `yaml:"plot_path,omitempty"`
}

type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	opts := train.DefaultOptions()
	cfg := Config{
		DataPath:     opts.DataPath,
		TestFraction: opts.TestFraction,
		Shuffle:      opts.Shuffle,
		Features:     opts.Features,
		Target:       opts.Target,
		Labels:       defaultLabels(),
		Schema: SchemaConfig{
			NAValues:  opts.Schema.NAValues,
			Delimiter: string(opts.Schema.Comma()),
		},
	}
	for _, c := range opts.Schema.Columns {
		cfg.Schema.Columns = append(cfg.Schema.Columns, ColumnConfig{Name: c.Name, Type: c.Type.String()})
	}
	return cfg
}

func defaultLabels() map[string]int {
	enc := dataprep.SpeciesEncoder()
	labels := make(map[string]int)
	for _, name := range enc.Classes() {
		code, _ := enc.Encode(name)
		labels[name] = int(code)
	}
	return labels
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default value; a labels table in the file replaces the default one.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Default()
	cfg.Labels = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Labels == nil {
		cfg.Labels = defaultLabels()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first inconsistency in c.
func (c Config) Validate() error {
	if c.DataPath == "" {
		return errors.New("config: data_path is empty")
	}
	if !(c.TestFraction > 0 && c.TestFraction < 1) {
		return fmt.Errorf("config: test_fraction %v outside (0, 1)", c.TestFraction)
	}
	if len(c.Features) == 0 {
		return errors.New("config: no features")
	}
	if c.Target == "" {
		return errors.New("config: no target")
	}
	if len(c.Labels) == 0 {
		return errors.New("config: empty labels table")
	}
	schema, err := c.PipelineSchema()
	if err != nil {
		return err
	}
	for _, name := range append([]string{c.Target}, c.Features...) {
		if schema.Index(name) < 0 {
			return fmt.Errorf("config: column %q is not in the schema", name)
		}
	}
	return nil
}

// PipelineSchema converts the schema section.
func (c Config) PipelineSchema() (pipeline.Schema, error) {
	s := pipeline.Schema{NAValues: c.Schema.NAValues}
	switch utf8.RuneCountInString(c.Schema.Delimiter) {
	case 0:
		s.Delimiter = ','
	case 1:
		s.Delimiter, _ = utf8.DecodeRuneInString(c.Schema.Delimiter)
	default:
		return pipeline.Schema{}, fmt.Errorf("config: delimiter %q is not a single character", c.Schema.Delimiter)
	}
	for _, col := range c.Schema.Columns {
		t, err := pipeline.ParseColumnType(col.Type)
		if err != nil {
			return pipeline.Schema{}, fmt.Errorf("config: column %q: %w", col.Name, err)
		}
		s.Columns = append(s.Columns, pipeline.Column{Name: col.Name, Type: t})
	}
	if err := s.Validate(); err != nil {
		return pipeline.Schema{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// Options turns the configuration into run options.
func (c Config) Options() (train.Options, error) {
	if err := c.Validate(); err != nil {
		return train.Options{}, err
	}
	schema, err := c.PipelineSchema()
	if err != nil {
		return train.Options{}, err
	}
	enc, err := dataprep.NewLabelEncoder(c.Labels)
	if err != nil {
		return train.Options{}, err
	}
	return train.Options{
		DataPath:     c.DataPath,
		Schema:       schema,
		Features:     append([]string(nil), c.Features...),
		Target:       c.Target,
		Encoder:      enc,
		TestFraction: c.TestFraction,
		Shuffle:      c.Shuffle,
		Seed:         c.Seed,
		Standardize:  c.Standardize,
	}, nil
}
