package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/tlaxcaltin/config"
)

// writeTemp creates a temporary file with content and
// returns its path.
func writeTemp(
	tb testing.TB,
	dir string,
	name string,
	content string,
) string {
	tb.Helper()

	pa := filepath.Join(dir, name)
	require.NoError(tb, os.WriteFile(pa, []byte(content), 0o600))

	return pa
}

func TestParse_entries(t *testing.T) {
	t.Parallel()

	va, err := config.Parse(
		"A=1\nB=hello world\nURL=a=b=c\nEMPTY=\n",
	)
	require.NoError(t, err)

	assert.Equal(t, 4, va.Len())

	got, ok := va.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "1", got)

	got, _ = va.Lookup("B")
	assert.Equal(t, "hello world", got)

	// Only the first "=" separates.
	got, _ = va.Lookup("URL")
	assert.Equal(t, "a=b=c", got)

	got, ok = va.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Empty(t, got)

	_, ok = va.Lookup("MISSING")
	assert.False(t, ok)
}

func TestParse_empty_string(t *testing.T) {
	t.Parallel()

	va, err := config.Parse("")

	require.NoError(t, err)
	assert.Zero(t, va.Len())
}

func TestParse_crlf_lines(t *testing.T) {
	t.Parallel()

	va, err := config.Parse("A=1\r\nB=2\r\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, va.Keys())

	got, _ := va.Lookup("A")
	assert.Equal(t, "1", got)
}

func TestParse_later_duplicate_wins(t *testing.T) {
	t.Parallel()

	va, err := config.Parse("A=1\nA=2")
	require.NoError(t, err)

	got, _ := va.Lookup("A")
	assert.Equal(t, "2", got)
}

func TestParse_malformed_line(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"NOEQUALS",
		"A=1\n\nB=2",
		"\n",
	} {
		_, err := config.Parse(s)
		require.ErrorIs(t, err, config.ErrMalformedLine, s)
		assert.Contains(t, err.Error(), "parsing configuration")
	}
}

func TestValues_zero_value(t *testing.T) {
	t.Parallel()

	var va config.Values

	_, ok := va.Lookup("A")
	assert.False(t, ok)
	assert.Zero(t, va.Len())
	assert.Empty(t, va.Keys())
}

func TestValues_New_copies(t *testing.T) {
	t.Parallel()

	src := map[string]string{"A": "1"}
	va := config.New(src)

	src["A"] = "changed"

	got, _ := va.Lookup("A")
	assert.Equal(t, "1", got)

	cp := va.Map()
	cp["A"] = "changed"

	got, _ = va.Lookup("A")
	assert.Equal(t, "1", got)
}

func TestValues_Keys_sorted(t *testing.T) {
	t.Parallel()

	va := config.New(map[string]string{
		"C": "3", "A": "1", "B": "2",
	})

	assert.Equal(t, []string{"A", "B", "C"}, va.Keys())
}

func TestParse_lone_carriage_return_separates(t *testing.T) {
	t.Parallel()

	va, err := config.Parse("A=1\rB=2\r")
	require.NoError(t, err)

	assert.Equal(
		t,
		map[string]string{"A": "1", "B": "2"},
		va.Map(),
	)
}
