// Package config loads workflowdot settings from a TOML file.
//
// All settings are optional; anything left out keeps its default. A file
// that sets every value looks like this:
//
//	[graph]
//	name = "D"
//	d2toptions = "--autosize"
//	ratio = "compress"
//	label_width = "10em"
//	label_align = "center"
//
// Unknown keys are rejected so that typos do not pass silently.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	wferrors "github.com/matzehuels/workflowdot/pkg/errors"
	"github.com/matzehuels/workflowdot/pkg/render/texdot"
)

// Config holds the settings read from a config file.
type Config struct {
	Graph texdot.Prologue `toml:"graph"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Graph: texdot.DefaultPrologue()}
}

// Read decodes TOML settings from r on top of [Default].
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, wferrors.Wrap(wferrors.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, wferrors.New(wferrors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, wferrors.Wrap(wferrors.ErrCodeFileNotFound, err, "open config %s", path)
		}
		return Config{}, wferrors.Wrap(wferrors.ErrCodeInvalidPath, err, "open config %s", path)
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every value can be written into the DOT prologue.
func (c Config) Validate() error {
	if err := wferrors.ValidateGraphName(c.Graph.Name); err != nil {
		return err
	}
	fields := []struct{ key, value string }{
		{"d2toptions", c.Graph.D2TOptions},
		{"ratio", c.Graph.Ratio},
		{"label_width", c.Graph.LabelWidth},
		{"label_align", c.Graph.LabelAlign},
	}
	for _, f := range fields {
		if f.value == "" {
			return wferrors.New(wferrors.ErrCodeInvalidConfig, "graph.%s cannot be empty", f.key)
		}
		if strings.ContainsAny(f.value, "\"\n\r") {
			return wferrors.New(wferrors.ErrCodeInvalidConfig, "graph.%s contains a quote or line break", f.key)
		}
	}
	if strings.Contains(c.Graph.LabelWidth, ",") || strings.Contains(c.Graph.LabelAlign, ",") {
		return wferrors.New(wferrors.ErrCodeInvalidConfig, "label_width and label_align cannot contain ','")
	}
	return nil
}
