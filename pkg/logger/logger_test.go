package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockLogLevel int8 = 0 // zapcore.InfoLevel

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    int8
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "info", want: 0},
		{in: "DEBUG", want: -1},
		{in: "warning", want: 1},
		{in: " error ", want: 2},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWritesJSONWithBuildFields(t *testing.T) {
	var buf bytes.Buffer
	log := zapr.NewLogger(New(Options{Level: mockLogLevel, Output: &buf}))

	log.Info("rendered", "records", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rendered", entry[MessageKey])
	assert.Equal(t, "cxcomplete", entry[BinaryKey])
	assert.EqualValues(t, 3, entry["records"])
	assert.Contains(t, entry, TimeStampKey)
}

func TestNewHonoursVerbosity(t *testing.T) {
	var quiet, loud bytes.Buffer
	zapr.NewLogger(New(Options{Level: 0, Output: &quiet})).V(1).Info("skipping unrecognized chunk")
	zapr.NewLogger(New(Options{Level: -1, Output: &loud})).V(1).Info("skipping unrecognized chunk")

	assert.Empty(t, quiet.String(), "V(1) is hidden at info")
	assert.Contains(t, loud.String(), "skipping unrecognized chunk")
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	zapr.NewLogger(New(Options{Format: FormatConsole, Output: &buf})).Info("hello")

	line := buf.String()
	assert.Contains(t, line, "INFO")
	assert.False(t, strings.HasPrefix(line, "{"), "console output is not JSON")
}

func TestGetReturnsSameInstanceOnSubsequentCalls(t *testing.T) {
	logger1 := Get(mockLogLevel)
	require.NotNil(t, logger1)
	assert.Same(t, logger1, Get(-1))
	assert.Same(t, logger1, Setup(Options{Format: FormatConsole}))
}

func TestGetReturnsNoopLoggerIfGlobalLoggerNil(t *testing.T) {
	Get(mockLogLevel)
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	assert.Same(t, &defaultNoopLogger, Get(mockLogLevel))
}

func TestWithLogger(t *testing.T) {
	ctx := context.Background()
	logger := Get(mockLogLevel)

	withLogger := WithLogger(ctx, logger)
	assert.Same(t, logger, withLogger.Value(loggerContextKey{}))
	assert.Equal(t, withLogger, WithLogger(withLogger, logger), "same logger keeps the context")

	other := logr.Discard()
	replaced := WithLogger(withLogger, &other)
	assert.Same(t, &other, replaced.Value(loggerContextKey{}))
}

func TestFromContext(t *testing.T) {
	global := Get(mockLogLevel)
	assert.Same(t, global, FromContext(context.Background()))

	own := logr.Discard()
	assert.Same(t, &own, FromContext(WithLogger(context.Background(), &own)))

	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()
	assert.Same(t, &defaultNoopLogger, FromContext(context.Background()))
}

func TestSyncDoesNotPanicWhenGlobalZapLoggerIsNil(t *testing.T) {
	orig := globalZapLogger
	globalZapLogger = nil
	defer func() { globalZapLogger = orig }()

	assert.NotPanics(t, Sync)
}

func TestIsIgnorableSyncError(t *testing.T) {
	assert.True(t, isIgnorableSyncError(syscall.ENOTTY))
	assert.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: The handle is invalid.")))
	assert.False(t, isIgnorableSyncError(errors.New("disk full")))
}

func TestWithValuesReturnsNewLogger(t *testing.T) {
	logger := Get(mockLogLevel)

	newLogger := WithValues(logger, "input", "-")
	require.NotNil(t, newLogger)
	assert.NotSame(t, logger, newLogger)
	assert.NotSame(t, logger, WithValues(logger))
}

func TestWithValuesPanicsOnNilLogger(t *testing.T) {
	assert.Panics(t, func() { _ = WithValues(nil, "key", "value") })
}
