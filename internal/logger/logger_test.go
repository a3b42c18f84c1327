package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FormatSelection(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		environment string
		wantJSON    bool
	}{
		{name: "production defaults to json", environment: "production", wantJSON: true},
		{name: "development defaults to pretty", environment: "development"},
		{name: "staging defaults to pretty", environment: "staging"},
		{name: "explicit json wins", format: FormatJSON, environment: "development", wantJSON: true},
		{name: "explicit pretty wins", format: FormatPretty, environment: "production"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(Config{
				Writer:      &buf,
				Format:      tt.format,
				Environment: tt.environment,
				Level:       slog.LevelInfo,
				NoColor:     true,
			})
			log.Info("catalog loaded")

			if tt.wantJSON {
				assert.Contains(t, buf.String(), `"msg":"catalog loaded"`)
			} else {
				assert.Contains(t, buf.String(), "INF catalog loaded")
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	require.NotNil(t, log)
	log.Error("nobody hears this")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil)
	h.noColor = true

	slog.New(h).Info("filter applied", "genre", "Тропы", "count", 2, "search", "две строки")

	line := buf.String()
	assert.Contains(t, line, "INF filter applied")
	assert.Contains(t, line, "genre=Тропы")
	assert.Contains(t, line, "count=2")
	assert.Contains(t, line, `search="две строки"`)
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestPrettyHandler_NoColor(t *testing.T) {
	var colored, plain bytes.Buffer

	slog.New(NewPrettyHandler(&colored, nil)).Info("x")
	p := NewPrettyHandler(&plain, nil)
	p.noColor = true
	slog.New(p).Info("x")

	assert.Contains(t, colored.String(), colorReset)
	assert.NotContains(t, plain.String(), "\033[")
}

func TestPrettyHandler_WithGroupPrefixesKeys(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil)
	h.noColor = true

	assert.Same(t, h, h.WithGroup(""))

	log := slog.New(h).With("app", "slovar").WithGroup("http").WithGroup("req")
	log.Info("served", "path", "/api/v1/terms")

	line := buf.String()
	assert.Contains(t, line, "app=slovar")
	assert.Contains(t, line, "http.req.path=/api/v1/terms")
}

func TestPrettyHandler_WithAttrsAfterGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil)
	h.noColor = true

	slog.New(h).WithGroup("catalog").With("source", "seed").Info("loaded")

	assert.Contains(t, buf.String(), "catalog.source=seed")
}

func TestPrettyHandler_WithSource(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, &slog.HandlerOptions{AddSource: true})

	slog.New(h).Info("with source")

	assert.Contains(t, buf.String(), "logger_test.go:")
}

func TestFormatLevel(t *testing.T) {
	tests := []struct {
		level     slog.Level
		wantStr   string
		wantColor string
	}{
		{slog.LevelDebug, "DBG", colorMagenta},
		{slog.LevelInfo, "INF", colorGreen},
		{slog.LevelWarn, "WRN", colorYellow},
		{slog.LevelError, "ERR", colorRed},
	}

	for _, tt := range tests {
		t.Run(tt.wantStr, func(t *testing.T) {
			str, color := formatLevel(tt.level)
			assert.Equal(t, tt.wantStr, str)
			assert.Equal(t, tt.wantColor, color)
		})
	}
}

func TestFormatValue(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "plain", formatValue(slog.StringValue("plain")))
	assert.Equal(t, `"with space"`, formatValue(slog.StringValue("with space")))
	assert.Equal(t, now.Format(time.RFC3339), formatValue(slog.TimeValue(now)))
	assert.Equal(t, "5s", formatValue(slog.DurationValue(5*time.Second)))
	assert.Equal(t, "42", formatValue(slog.IntValue(42)))
}

func TestLogger_Helpers(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: FormatJSON, Level: slog.LevelInfo})

	log.
		WithField("term_id", 3).
		WithError(errors.New("term 99 not found")).
		WithFields(map[string]any{"tab": "alphabetical"}).
		Warn("select failed")

	out := buf.String()
	assert.Contains(t, out, `"term_id":3`)
	assert.Contains(t, out, `"error":"term 99 not found"`)
	assert.Contains(t, out, `"tab":"alphabetical"`)
	assert.Contains(t, out, `"msg":"select failed"`)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: FormatJSON, Level: slog.LevelWarn})

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
