package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"INFO":      InfoLevel,
		"warn":      WarnLevel,
		" Error ":   ErrorLevel,
		"fatal":     FatalLevel,
		"SUCCESS":   SuccessLevel,
		"debug":     DebugLevel,
		"network\n": NetworkLevel,
	}
	for input, want := range cases {
		got, err := ParseLevel(input)
		require.NoError(t, err, "ParseLevel(%q)", input)
		assert.Equal(t, want, got)
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	_, err := ParseLevel("verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}

func TestLevelValid(t *testing.T) {
	for _, level := range AllLevels() {
		assert.True(t, level.Valid(), "%s should be valid", level)
	}
	assert.False(t, Level("TRACE").Valid())
}

func TestColorEscapes(t *testing.T) {
	assert.Equal(t, "\033[31m", Red.Foreground())
	assert.Equal(t, "\033[41m", Red.Background())
	assert.Empty(t, Color("puce").Foreground())
	assert.False(t, Color("puce").Valid())
}
