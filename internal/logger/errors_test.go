package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	var buf bytes.Buffer

	old := errorOutput
	errorOutput = &buf

	defer func() {
		errorOutput = old
	}()

	registerMetrics("test")
	before := testutil.ToFloat64(writeErrors)

	ErrorHandler(errors.New("disk full"))

	assert.Equal(t, "zerolog: could not write event: disk full\n", buf.String())
	assert.InDelta(t, before+1, testutil.ToFloat64(writeErrors), 0)
}

func TestPrometheusHook(t *testing.T) {
	hook := NewPrometheusHook("test")
	before := testutil.ToFloat64(statements.WithLabelValues("warn"))

	hook.Run(nil, zerolog.WarnLevel, "")
	hook.Run(nil, zerolog.NoLevel, "")

	assert.InDelta(t, before+1, testutil.ToFloat64(statements.WithLabelValues("warn")), 0)
}
