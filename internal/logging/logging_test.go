package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"quiet", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, tt.verbose)

			log.Debug().Str("file", "logger.ts").Msg("wrote template")
			log.Warn().Str("component", "foo").Msg("skipped")

			out := buf.String()
			if got := strings.Contains(out, "wrote template"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v\n%s", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "skipped") || !strings.Contains(out, "component=foo") {
				t.Errorf("warning missing from output:\n%s", out)
			}
		})
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error().Msg("discarded")
}
