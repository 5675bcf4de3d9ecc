package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		joinPaths []string
		tplPath   string
		outPath   string
		inline    string
	}{
		{
			name:      "template only",
			args:      []string{"config.h.in", "config.h", "A=1"},
			joinPaths: []string{},
			tplPath:   "config.h.in",
			outPath:   "config.h",
			inline:    "A=1",
		},
		{
			name: "join files in order",
			args: []string{
				"j1.h", "j2.h", "config.h.in", "config.h", "A=1\nB=2",
			},
			joinPaths: []string{"j1.h", "j2.h"},
			tplPath:   "config.h.in",
			outPath:   "config.h",
			inline:    "A=1\nB=2",
		},
		{
			name:      "dash selects stdout",
			args:      []string{"config.h.in", "-", ""},
			joinPaths: []string{},
			tplPath:   "config.h.in",
			outPath:   "",
			inline:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			joinPaths, tplPath, outPath, inline, err := splitArgs(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.joinPaths, joinPaths)
			assert.Equal(t, tt.tplPath, tplPath)
			assert.Equal(t, tt.outPath, outPath)
			assert.Equal(t, tt.inline, inline)
		})
	}
}

func TestSplitArgs_too_few(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		nil,
		{"config.h.in"},
		{"config.h.in", "config.h"},
	} {
		_, _, _, _, err := splitArgs(args)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "IN_PATH... OUT_PATH CONFIG")
	}
}
