package configure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const directive = "#cmakedefine"

// Lookup resolves configuration keys. config.Values
// satisfies it.
type Lookup interface {
	Lookup(key string) (string, bool)
}

// Renderer renders template lines against a
// configuration mapping.
type Renderer struct {
	values Lookup
}

// NewRenderer returns a Renderer reading keys from
// values.
func NewRenderer(values Lookup) *Renderer {
	return &Renderer{values: values}
}

// Render reads template lines from in, renders each one
// and writes it to out. Line terminators are kept as
// read. Lines already written stay written when a later
// line fails.
func (re *Renderer) Render(in io.Reader, out io.Writer) error {
	const errCtx = "rendering template"

	br := bufio.NewReader(in)

	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("%s: %w", errCtx, readErr)
		}

		if line != "" {
			rendered, err := re.RenderLine(line)
			if err != nil {
				return fmt.Errorf(
					"%s: line %d: %w", errCtx, lineNo, err,
				)
			}

			if _, err := io.WriteString(out, rendered); err != nil {
				return fmt.Errorf(
					"%s: writing output: %w", errCtx, err,
				)
			}
		}

		if readErr != nil {
			return nil
		}
	}
}

// RenderLine renders a single line, which may carry its
// terminator. A #cmakedefine line becomes "#define KEY"
// (plus the original trailing text) when KEY is set to
// anything but "0", and "/* #undef KEY */" otherwise.
// Then ${KEY} and @KEY@ placeholders are replaced in one
// left to right pass; substituted text is not scanned
// again.
func (re *Renderer) RenderLine(line string) (string, error) {
	body, eol := splitTerminator(line)

	if strings.HasPrefix(body, directive) {
		defined, err := re.define(body)
		if err != nil {
			return "", err
		}

		body = defined
	}

	body, err := re.interpolate(body)
	if err != nil {
		return "", err
	}

	return body + eol, nil
}

// define rewrites a #cmakedefine line without its
// terminator. The key follows the first space and ends
// at the next space; anything after that space is kept
// verbatim as the define's value.
func (re *Renderer) define(body string) (string, error) {
	sp := strings.IndexByte(body, ' ')
	if sp < 0 {
		return "", fmt.Errorf(
			"%w, got %q", ErrMalformedDirective, body,
		)
	}

	key, value, hasValue := strings.Cut(body[sp+1:], " ")
	if key == "" {
		return "", fmt.Errorf(
			"%w, got %q", ErrMalformedDirective, body,
		)
	}

	val, ok := re.values.Lookup(key)
	if !ok || val == "0" {
		return "/* #undef " + key + " */", nil
	}

	if hasValue {
		return "#define " + key + " " + value, nil
	}

	return "#define " + key, nil
}

// interpolate replaces ${KEY} and @KEY@ placeholders.
func (re *Renderer) interpolate(line string) (string, error) {
	if !strings.ContainsAny(line, "$@") {
		return line, nil
	}

	var sb strings.Builder

	rest := line

	for {
		idx := strings.IndexAny(rest, "$@")
		if idx < 0 {
			sb.WriteString(rest)

			return sb.String(), nil
		}

		sb.WriteString(rest[:idx])

		var (
			value string
			width int
			err   error
		)

		if rest[idx] == '$' {
			value, width, err = re.braceToken(rest[idx:])
		} else {
			value, width, err = re.atToken(rest[idx:])
		}

		if err != nil {
			return "", err
		}

		sb.WriteString(value)

		rest = rest[idx+width:]
	}
}

// braceToken resolves the ${KEY} token at the start of s
// and returns its value and length.
func (re *Renderer) braceToken(s string) (string, int, error) {
	if len(s) < 2 || s[1] != '{' {
		return "", 0, ErrBareDollar
	}

	end := strings.IndexByte(s[2:], '}')
	if end < 0 {
		return "", 0, fmt.Errorf(
			"%w: %q", ErrUnterminatedPlaceholder, s,
		)
	}

	value, err := re.lookup(s[2 : 2+end])
	if err != nil {
		return "", 0, err
	}

	return value, end + 3, nil
}

// atToken resolves the @KEY@ token at the start of s and
// returns its value and length.
func (re *Renderer) atToken(s string) (string, int, error) {
	end := strings.IndexByte(s[1:], '@')
	if end < 0 {
		return "", 0, fmt.Errorf(
			"%w: %q", ErrUnterminatedPlaceholder, s,
		)
	}

	value, err := re.lookup(s[1 : 1+end])
	if err != nil {
		return "", 0, err
	}

	return value, end + 2, nil
}

func (re *Renderer) lookup(key string) (string, error) {
	val, ok := re.values.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingKey, key)
	}

	return val, nil
}

// splitTerminator splits line into its content and its
// "\n" or "\r\n" terminator.
func splitTerminator(line string) (string, string) {
	if !strings.HasSuffix(line, "\n") {
		return line, ""
	}

	body := line[:len(line)-1]
	if strings.HasSuffix(body, "\r") {
		return body[:len(body)-1], "\r\n"
	}

	return body, "\n"
}
