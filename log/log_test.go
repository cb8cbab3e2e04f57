package log_test

import (
	"bytes"
	"errors"
	"regexp"
	"testing"
	"time"

	apex "github.com/apex/log"
	"github.com/fwojciec/textdiff/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomHandler_HandleLog(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 1, 14, 5, 9, 0, time.UTC)
	tests := []struct {
		name  string
		entry apex.Entry
		want  string
	}{
		{
			name:  "debug",
			entry: apex.Entry{Level: apex.DebugLevel, Message: "loaded config", Timestamp: ts},
			want:  "2026-03-01 14:05:09 D loaded config\n",
		},
		{
			name:  "trace prefix",
			entry: apex.Entry{Level: apex.DebugLevel, Message: "TRACE: hunk 3", Timestamp: ts},
			want:  "2026-03-01 14:05:09 T hunk 3\n",
		},
		{
			name:  "error field",
			entry: apex.Entry{Level: apex.ErrorLevel, Message: "git show", Timestamp: ts, Fields: apex.Fields{"error": errors.New("exit status 128")}},
			want:  "2026-03-01 14:05:09 E git show: exit status 128\n",
		},
		{
			name:  "warn",
			entry: apex.Entry{Level: apex.WarnLevel, Message: "w", Timestamp: ts},
			want:  "2026-03-01 14:05:09 W w\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := &log.CustomHandler{Writer: &buf}

			entry := tt.entry
			require.NoError(t, h.HandleLog(&entry))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

// Tests below change the global apex logger and cannot run in parallel.

func TestInitLogger_Levels(t *testing.T) {
	t.Setenv(log.EnvLevel, "info")

	var buf bytes.Buffer
	log.InitLoggerTo(&buf)

	log.Debugf("hidden %d", 1)
	log.Infof("shown %d", 2)
	log.Warnf("warned %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Regexp(t, regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} I shown 2\n`), out)
	assert.Contains(t, out, " W warned 3\n")
}

func TestInitLogger_DefaultsToError(t *testing.T) {
	t.Setenv(log.EnvLevel, "")

	var buf bytes.Buffer
	log.InitLoggerTo(&buf)

	log.Infof("quiet")
	log.Errorf("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), " E loud\n")
}

func TestInitLogger_Trace(t *testing.T) {
	t.Setenv(log.EnvLevel, "trace")

	var buf bytes.Buffer
	log.InitLoggerTo(&buf)

	log.Tracef("step %s", "one")
	log.WithError(errors.New("boom")).Error("failed")

	assert.Contains(t, buf.String(), " T step one\n")
	assert.Contains(t, buf.String(), " E failed: boom\n")
}
