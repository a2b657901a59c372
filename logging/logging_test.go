package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogLevelRoundTrip(t *testing.T) {
	for _, level := range []int{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel} {
		parsed, err := LogLevelFromString(LogLevelToString(level))
		require.NoError(t, err)
		require.Equal(t, level, parsed)
	}
}

func TestLogLevelFromString(t *testing.T) {
	level, err := LogLevelFromString("  debug ")
	require.NoError(t, err)
	require.Equal(t, DebugLevel, level)

	level, err = LogLevelFromString("")
	require.NoError(t, err)
	require.Equal(t, InfoLevel, level)

	_, err = LogLevelFromString("loud")
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	logger, err := New(WarnLevel, "json")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	logger, err = New(TraceLevel, "")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = New(InfoLevel, "xml")
	require.Error(t, err)
}

func TestOrNop(t *testing.T) {
	require.NotNil(t, OrNop(nil))
	require.False(t, OrNop(nil).Core().Enabled(zapcore.FatalLevel))
}
