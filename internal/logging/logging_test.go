package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chessington-go/internal/config"
	"github.com/lgbarn/chessington-go/internal/errors"
	"github.com/lgbarn/chessington-go/internal/testutil"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		testutil.AssertNoError(t, err, "ParseLevel(%q)", tt.in)
		testutil.AssertEqual(t, got, tt.want, "ParseLevel(%q)", tt.in)
	}

	_, err := ParseLevel("verbose")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "debug", Format: config.FormatJSON}, zapcore.AddSync(&buf))
	testutil.AssertNoError(t, err)

	logger.Debug("piece moved", zap.String("from", "e2"))
	testutil.AssertNoError(t, logger.Sync())

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line %q is not JSON: %v", buf.String(), err)
	}
	testutil.AssertEqual(t, entry["msg"], "piece moved")
	testutil.AssertEqual(t, entry["level"], "debug")
	testutil.AssertEqual(t, entry["from"], "e2")
}

func TestNew_ConsoleFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "warn", Format: config.FormatConsole}, zapcore.AddSync(&buf))
	testutil.AssertNoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	testutil.AssertNoError(t, logger.Sync())

	out := buf.String()
	testutil.AssertFalse(t, strings.Contains(out, "hidden"), "info entry should be filtered: %q", out)
	testutil.AssertTrue(t, strings.Contains(out, "WARN | shown"), "warn entry missing: %q", out)
}

func TestNew_Invalid(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(config.LogConfig{Level: "loud"}, zapcore.AddSync(&buf))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)

	_, err = New(config.LogConfig{Level: "info", Format: "xml"}, zapcore.AddSync(&buf))
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}
