package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelOrder(t *testing.T) {
	t.Parallel()

	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		require.Less(t, levels[i-1], levels[i], "levels must be ordered most severe first")
	}
	require.Equal(t, Level(0), ErrorLevel)
}

func TestLevelEnabled(t *testing.T) {
	t.Parallel()

	require.True(t, ErrorLevel.Enabled(WarnLevel))
	require.True(t, WarnLevel.Enabled(WarnLevel))
	require.False(t, InfoLevel.Enabled(WarnLevel))
	require.False(t, DebugLevel.Enabled(ErrorLevel))
	require.True(t, DebugLevel.Enabled(DebugLevel))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"error":   ErrorLevel,
		"ERR":     ErrorLevel,
		"warning": WarnLevel,
		" warn ":  WarnLevel,
		"Info":    InfoLevel,
		"debug":   DebugLevel,
	}
	for s, want := range cases {
		got, err := ParseLevel(s)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseLevel("verbose")
	require.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	cases := map[Level]string{
		ErrorLevel: "ERROR",
		WarnLevel:  "WARNING",
		InfoLevel:  "INFO",
		DebugLevel: "DEBUG",
		Level(9):   "LEVEL(9)",
	}
	for level, want := range cases {
		require.Equal(t, want, level.String())
	}
}
