package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"verbose": Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("pretty"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestZapLogger_WithAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := Wrap(zap.New(core)).With(map[string]any{"request_id": "abc"})

	l.Error("store failed", map[string]any{"err": errors.New("boom"), "": "ignored"})

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "abc", ctx["request_id"])
	assert.Equal(t, "boom", ctx["err"])
	assert.NotContains(t, ctx, "")
}

func TestNew_BuildsBothFormats(t *testing.T) {
	for _, f := range []Format{FormatText, FormatJSON} {
		l, err := New(Options{Level: Warn, Format: f, App: "test"})
		require.NoError(t, err)
		require.NotNil(t, l)
	}
}
