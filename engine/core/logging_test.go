package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, DebugLevel, ParseLogLevel("debug"))
	require.Equal(t, WarnLevel, ParseLogLevel(" WARN "))
	require.Equal(t, ErrorLevel, ParseLogLevel("error"))
	require.Equal(t, InfoLevel, ParseLogLevel(""))
	require.Equal(t, InfoLevel, ParseLogLevel("chatty"))
}

func TestSetLogLevel(t *testing.T) {
	SetLogLevel(ErrorLevel)
	require.Equal(t, ErrorLevel, getLogger().GetLevel())
	SetLogLevel(InfoLevel)
	require.Equal(t, InfoLevel, getLogger().GetLevel())
}
