package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{input: "DEBUG", want: zerolog.DebugLevel},
		{input: "debug", want: zerolog.DebugLevel},
		{input: "INFO", want: zerolog.InfoLevel},
		{input: "WARNING", want: zerolog.WarnLevel},
		{input: "warn", want: zerolog.WarnLevel},
		{input: "ERROR", want: zerolog.ErrorLevel},
		{input: " info ", want: zerolog.InfoLevel},
		{input: "", want: zerolog.WarnLevel},
		{input: "trace", want: zerolog.WarnLevel},
		{input: "nonsense", want: zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInit_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warning", Output: &buf})
	defer Init(Config{})

	Debug().Msg("debug line")
	Info().Msg("info line")
	Warn().Msg("warn line")
	Error().Msg("error line")

	out := buf.String()
	if strings.Contains(out, "debug line") || strings.Contains(out, "info line") {
		t.Errorf("levels below warning should be suppressed, got: %s", out)
	}
	if !strings.Contains(out, "warn line") || !strings.Contains(out, "error line") {
		t.Errorf("warn and error lines should be emitted, got: %s", out)
	}
}

func TestInit_StructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(Config{})

	Info().Str("event", "media.play").Msg("Relaying webhook event")

	out := buf.String()
	for _, want := range []string{`"level":"info"`, `"event":"media.play"`, `"message":"Relaying webhook event"`, `"time":`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s, got: %s", want, out)
		}
	}
}
