package configure

import (
	"fmt"
	"sort"
	"strings"
)

const (
	privateBegin = "\n/* begin private */\n"
	privateEnd   = "\n/* end private */\n"
)

// region is the half-open interval [start, end) of a
// removable private section.
type region struct {
	start int
	end   int
}

// StripPrivate removes every private region from text and
// replaces each one with a single newline. A region runs
// from a begin marker through its matching end marker;
// markers nest and an end marker closes the most recent
// open one. A begin marker that is never closed removes
// everything up to the end of text.
func StripPrivate(text string) (string, error) {
	const errCtx = "stripping private regions"

	regions, err := privateRegions(text)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	if len(regions) == 0 {
		return text, nil
	}

	var sb strings.Builder

	sb.Grow(len(text))

	cursor := 0

	for _, re := range regions {
		// Nested regions are already covered by their
		// enclosing one.
		if re.start < cursor {
			continue
		}

		sb.WriteString(text[cursor:re.start])
		sb.WriteByte('\n')

		cursor = re.end
	}

	sb.WriteString(text[cursor:])

	return sb.String(), nil
}

// privateRegions pairs begin and end markers and returns
// the regions sorted by start offset. Unclosed begin
// markers extend to len(text).
func privateRegions(text string) ([]region, error) {
	var (
		regions []region
		opens   []int
		cursor  int
	)

	for {
		iend := strings.Index(text[cursor:], privateEnd)
		if iend < 0 {
			break
		}

		iend += cursor

		// Prefer recording a begin marker that comes
		// before the end marker.
		ibegin := strings.Index(text[cursor:], privateBegin)
		if ibegin >= 0 && cursor+ibegin < iend {
			opens = append(opens, cursor+ibegin)
			cursor += ibegin + len(privateBegin)

			continue
		}

		if len(opens) == 0 {
			return nil, fmt.Errorf(
				"%w at offset %d", ErrUnmatchedClose, iend,
			)
		}

		last := len(opens) - 1
		cursor = iend + len(privateEnd)

		regions = append(regions, region{
			start: opens[last],
			end:   cursor,
		})

		opens = opens[:last]
	}

	for _, op := range opens {
		regions = append(regions, region{
			start: op,
			end:   len(text),
		})
	}

	sort.Slice(regions, func(i, j int) bool {
		return regions[i].start < regions[j].start
	})

	return regions, nil
}
