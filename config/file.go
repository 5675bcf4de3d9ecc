package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// ErrUnsupportedValue is returned when a configuration
// file holds a value that is not a scalar.
var ErrUnsupportedValue = errors.New(
	"configuration value must be a scalar",
)

// LoadFile reads a configuration file. ".json" files are
// decoded as a JSON object and ".yaml"/".yml" files as a
// YAML mapping; any other file is parsed like the inline
// configuration string.
//
// Booleans become "1" or "0", numbers keep their decimal
// text and null entries are left out, so they read as
// undefined.
func LoadFile(path string) (Values, error) {
	const errCtx = "loading configuration file"

	content, err := os.ReadFile(path) //nolint:gosec // paths from CLI flags
	if err != nil {
		return Values{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	var raw map[string]interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.UseNumber()

		if err := dec.Decode(&raw); err != nil {
			return Values{}, fmt.Errorf(
				"%s: decoding json %s: %w",
				errCtx, path, err,
			)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return Values{}, fmt.Errorf(
				"%s: decoding yaml %s: %w",
				errCtx, path, err,
			)
		}
	default:
		va, err := Parse(string(content))
		if err != nil {
			return Values{}, fmt.Errorf(
				"%s: %s: %w", errCtx, path, err,
			)
		}

		return va, nil
	}

	m := make(map[string]string, len(raw))

	for key, val := range raw {
		str, present, err := stringify(val)
		if err != nil {
			return Values{}, fmt.Errorf(
				"%s: %s: key %s: %w",
				errCtx, path, key, err,
			)
		}

		if present {
			m[key] = str
		}
	}

	return Values{m: m}, nil
}

// stringify renders a decoded scalar as configuration
// text. A nil value reports present as false.
func stringify(val interface{}) (string, bool, error) {
	switch tv := val.(type) {
	case nil:
		return "", false, nil
	case string:
		return tv, true, nil
	case bool:
		if tv {
			return "1", true, nil
		}

		return "0", true, nil
	case json.Number:
		return tv.String(), true, nil
	case float64:
		return strconv.FormatFloat(tv, 'f', -1, 64), true, nil
	case float32:
		return strconv.FormatFloat(float64(tv), 'f', -1, 32), true, nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", tv), true, nil
	default:
		return "", false, fmt.Errorf(
			"%w, got %T", ErrUnsupportedValue, val,
		)
	}
}
