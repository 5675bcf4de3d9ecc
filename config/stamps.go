package config

import (
	"fmt"
	"os"
	"strings"
)

// LoadStamps reads workspace status files and merges them
// into a single mapping. Each line is "KEY VALUE" with the
// first space as delimiter. Lines without a space are
// skipped, and later files override earlier ones.
func LoadStamps(infoFiles []string) (Values, error) {
	const errCtx = "loading stamps"

	m := make(map[string]string)

	for _, sf := range infoFiles {
		content, err := os.ReadFile(sf) //nolint:gosec // paths from CLI flags
		if err != nil {
			return Values{}, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		for _, line := range splitLines(string(content)) {
			key, val, ok := strings.Cut(line, " ")
			if ok {
				m[key] = val
			}
		}
	}

	return Values{m: m}, nil
}
