package config

import (
	"fmt"
	"log/slog"

	"github.com/valyala/fasttemplate"
)

// Options lists the configuration sources for Load.
type Options struct {
	// StampInfoFiles are workspace status files in
	// "KEY VALUE" format. They form the base layer.
	StampInfoFiles []string

	// Files are configuration files read with LoadFile,
	// applied in order over the stamps.
	Files []string

	// Inline is the KEY=VALUE configuration string. It
	// is applied last.
	Inline string
}

// Load assembles the configuration mapping. Stamps form
// the base layer; files and the inline string override
// them. Values coming from files and the inline string
// have single-brace {STAMP} references expanded against
// the stamps; unknown references are kept as-is.
func Load(opts Options) (Values, error) {
	const errCtx = "loading configuration"

	stamps, err := LoadStamps(opts.StampInfoFiles)
	if err != nil {
		return Values{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	merged := stamps.Map()

	layers := make([]Values, 0, len(opts.Files)+1)

	for _, pa := range opts.Files {
		va, err := LoadFile(pa)
		if err != nil {
			return Values{}, fmt.Errorf("%s: %w", errCtx, err)
		}

		slog.Debug(
			"loaded configuration file",
			"path", pa,
			"keys", va.Len(),
		)

		layers = append(layers, va)
	}

	inline, err := Parse(opts.Inline)
	if err != nil {
		return Values{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	layers = append(layers, inline)

	stampCtx := make(map[string]interface{}, stamps.Len())
	for key, val := range stamps.m {
		stampCtx[key] = val
	}

	for _, layer := range layers {
		for key, val := range layer.m {
			if len(stampCtx) > 0 {
				val = fasttemplate.ExecuteStringStd(
					val, "{", "}", stampCtx,
				)
			}

			merged[key] = val
		}
	}

	return Values{m: merged}, nil
}
