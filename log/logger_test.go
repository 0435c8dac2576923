package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithOutput(t *testing.T) {
	tests := []struct {
		name       string
		suppressed bool
		debug      bool
		logDebug   bool
		want       []string
		notWant    []string
	}{
		{
			name:     "info level hides debug",
			logDebug: true,
			want:     []string{"hello", "sessions"},
			notWant:  []string{"hidden"},
		},
		{
			name:     "debug level shows debug",
			debug:    true,
			logDebug: true,
			want:     []string{"hello", "hidden"},
		},
		{
			name:       "suppressed writes nothing",
			suppressed: true,
			logDebug:   true,
			notWant:    []string{"hello", "hidden"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			l := NewWithOutput(&buf, "sessions", tt.suppressed, tt.debug)
			l.Infof("hello %d", 1)

			if tt.logDebug {
				l.Debug("hidden")
			}

			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}

			for _, s := range tt.notWant {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
