// Package config loads declarative component trees from YAML files.
//
// A file describes the options of one root component, including its
// "children" declarations, plus an optional skin section:
//
//	id: demo-player
//	skin:
//	  control: gainsboro
//	  accent: "#1e90ff"
//	children:
//	  - controlBar
//	  - name: bigPlayButton
//	    controlText: Play Video
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-reel/reel/pkg/core"
	"github.com/go-reel/reel/pkg/theme"
)

// Load reads and normalizes a component options file.
func Load(path string) (core.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional is Load, except a missing file yields empty options.
func LoadOptional(path string) (core.Options, error) {
	opts, err := Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return core.Options{}, nil
	}
	return opts, err
}

// Parse decodes YAML bytes into component options. Mappings become nested
// Options values so the configuration merge treats them as plain objects.
func Parse(data []byte) (core.Options, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse component config: %w", err)
	}
	opts, _ := normalize(raw).(core.Options)
	if opts == nil {
		opts = core.Options{}
	}
	return opts, nil
}

// Skin extracts and resolves the "skin" palette section of opts, if any.
func Skin(opts core.Options) (theme.Palette, error) {
	section, ok := opts.Sub("skin")
	if !ok {
		return nil, nil
	}
	values := make(map[string]string, len(section))
	for slot, v := range section {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("skin slot %q: expected a color string, got %T", slot, v)
		}
		values[slot] = s
	}
	return theme.ParsePalette(values)
}

// normalize rewrites decoder output into the substrate's option shapes:
// string-keyed mappings to core.Options, recursively, inside slices too.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		opts := make(core.Options, len(v))
		for key, item := range v {
			opts[key] = normalize(item)
		}
		return opts
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = normalize(item)
		}
		return items
	default:
		return value
	}
}
