package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"disabled", zerolog.Disabled},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.want, got, tt.input)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestComponentAddsField(t *testing.T) {
	previous := Logger()
	t.Cleanup(func() { SetLogger(previous) })

	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	logger := Component("showcase")
	logger.Info().Msg("hello")

	require.Contains(t, buf.String(), `"component":"showcase"`)
	require.Contains(t, buf.String(), `"message":"hello"`)
}

func TestInitWritesJSONToFile(t *testing.T) {
	previous := Logger()
	t.Cleanup(func() { SetLogger(previous) })

	path := filepath.Join(t.TempDir(), "logs", "showcase.log")
	closer, err := Init(Config{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	logger := Component("test")
	logger.Debug().Msg("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `"message":"written"`))
}

func TestInitRejectsUnknownFormat(t *testing.T) {
	_, err := Init(Config{Format: "xml"})
	require.Error(t, err)
}
