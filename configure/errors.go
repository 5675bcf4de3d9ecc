package configure

import "errors"

// ErrMissingKey is returned when a ${KEY} or @KEY@
// placeholder names a key that is not configured.
var ErrMissingKey = errors.New("configuration key not found")

// ErrUnterminatedPlaceholder is returned when a "${" has
// no closing "}" or an "@" has no closing "@".
var ErrUnterminatedPlaceholder = errors.New(
	"unterminated placeholder",
)

// ErrBareDollar is returned when a "$" is not followed
// by "{".
var ErrBareDollar = errors.New(`"$" must be followed by "{"`)

// ErrMalformedDirective is returned for a #cmakedefine
// line without a key.
var ErrMalformedDirective = errors.New(
	"#cmakedefine requires a key",
)

// ErrUnmatchedClose is returned when an end-private
// marker has no open begin-private marker before it.
var ErrUnmatchedClose = errors.New(
	"end private marker without begin",
)
