package stdlogger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/gojira/gojira/internal/logger/adapter/stdlogger"
)

func withBufferLogger(t *testing.T, level zerolog.Level) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(level)

	t.Cleanup(func() { log.Logger = prev })

	return &buf
}

func TestLevels(t *testing.T) {
	buf := withBufferLogger(t, zerolog.InfoLevel)

	l := stdlogger.New()
	l.Debugf("%s: hidden", "debug")
	l.Infof("%s: shown", "info")
	l.Warningf("%d: shown", 2)
	l.Errorf("%v: shown", "error")

	out := buf.String()

	assert.NotContains(t, out, "debug: hidden")
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"component":"stdlogger"`)
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestPrintf(t *testing.T) {
	buf := withBufferLogger(t, zerolog.DebugLevel)

	stdlogger.New().Printf("%s\n[rows:%d] %s", "file.go:1", 1, "SELECT 1")

	assert.Contains(t, buf.String(), "file.go:1 [rows:1] SELECT 1")
}
