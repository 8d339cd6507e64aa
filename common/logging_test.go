/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(LogLevelInfo, &buf)

	logger.Debug("hidden %d", 1)
	assert.Equal(t, 0, buf.Len())

	logger.Info("numTables=%d", 4)
	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "numTables=4")
	assert.Contains(t, out, "logging_test.go")

	assert.True(t, logger.IsLogLevel(LogLevelWarning))
	assert.False(t, logger.IsLogLevel(LogLevelTrace))
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(DummyLogger{})

	var buf bytes.Buffer
	SetLogger(NewWriterLogger(LogLevelTrace, &buf))
	Log.Trace("field %s", "sfntVersion")
	assert.Contains(t, buf.String(), "[TRACE]")
	assert.Contains(t, buf.String(), "field sfntVersion")
}
