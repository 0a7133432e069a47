package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/circlegrid/pkg/errors"
	"github.com/matzehuels/circlegrid/pkg/pipeline"
)

// loadConfig reads pipeline options from a .toml, .yaml or .yml file.
// Keys match the json tags of pipeline.Options (width, key_fields, ...).
func loadConfig(path string) (pipeline.Options, error) {
	var opts pipeline.Options

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return opts, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
	}
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeConfiguration, err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &opts)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &opts)
	default:
		return opts, errors.Configuration("unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeConfiguration, err, "parse config %s", path)
	}
	return opts, nil
}

// applyConfig copies non-zero values from file into dst for every option
// whose flag was not set on the command line. changed reports whether a
// flag was given explicitly; flags a command does not define count as
// unset.
func applyConfig(dst *pipeline.Options, file pipeline.Options, changed func(flag string) bool) {
	set := func(flag string, isZero bool, apply func()) {
		if !isZero && !changed(flag) {
			apply()
		}
	}

	set("key", len(file.KeyFields) == 0, func() { dst.KeyFields = file.KeyFields })
	set("value", file.ValueField == "", func() { dst.ValueField = file.ValueField })
	set("clusters", file.Clusters == 0, func() { dst.Clusters = file.Clusters })
	set("width", file.Width == 0, func() { dst.Width = file.Width })
	set("height", file.Height == 0, func() { dst.Height = file.Height })
	set("margin", file.Margin == 0, func() { dst.Margin = file.Margin })
	set("padding", file.Padding == 0, func() { dst.Padding = file.Padding })
	set("size", file.Size == "", func() { dst.Size = file.Size })
	set("type", file.VizType == "", func() { dst.VizType = file.VizType })
	set("format", len(file.Formats) == 0, func() { dst.Formats = file.Formats })
	set("palette", file.Palette == "", func() { dst.Palette = file.Palette })
	set("grid", !file.Grid, func() { dst.Grid = true })
	set("labels", !file.Labels, func() { dst.Labels = true })
	set("outlines", !file.Outlines, func() { dst.Outlines = true })
	set("detailed", !file.Detailed, func() { dst.Detailed = true })
	set("scale", file.Scale == 0, func() { dst.Scale = file.Scale })
}

// resolveOptions applies the --config file, if any, to opts.
func (c *CLI) resolveOptions(opts *pipeline.Options, changed func(string) bool) error {
	if c.configPath == "" {
		return nil
	}
	file, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	applyConfig(opts, file, changed)
	c.Logger.Debug("applied config file", "path", c.configPath)
	return nil
}
