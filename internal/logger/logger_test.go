package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("warn", "json", &buf)

	log.Info().Msg("hidden")
	log.Warn().Str("email", "a@b.c").Msg("shown")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "shown", entry["message"])
	require.Equal(t, "a@b.c", entry["email"])
}

func TestSetupUnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("chatty", "json", &buf)

	log.Info().Msg("hidden")
	require.Zero(t, buf.Len())
}

func TestSetupPretty(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("debug", "pretty", &buf)

	log.Debug().Msg("hello")
	require.Contains(t, buf.String(), "hello")
}
