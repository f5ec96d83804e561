package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "verbose", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_FieldsAndLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core, LevelInfo)

	logger.Debug("dropped")
	logger.With(String("component", "test")).Info("kept",
		Int("circles", 4),
		Uint64("fingerprint", 7),
		Float64("depth", 0.5),
		Bool("hit", true),
		Duration("elapsed", 1500*time.Millisecond),
		Error(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "kept", entries[0].Message)
	assert.Equal(t, "test", ctx["component"])
	assert.EqualValues(t, 4, ctx["circles"])
	assert.EqualValues(t, 7, ctx["fingerprint"])
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, 1500*time.Millisecond, ctx["elapsed"])

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, logger.GetLevel())
	logger.Debug("now kept")
	assert.Equal(t, 2, logs.Len())
}

func TestProvide_NeverNil(t *testing.T) {
	assert.NotNil(t, Provide())
}
