package progressw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetLogger(t *testing.T) {
	assert.Same(t, GetLogger("test-same"), GetLogger("test-same"))
	assert.NotSame(t, GetLogger("test-a"), GetLogger("test-b"))
}

func TestLoggerFormat(t *testing.T) {
	l := GetLogger("test-format")
	l.colorful = false
	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)

	l.WithFields(logrus.Fields{"b": 2, "a": 1}).Debug("hello\n")
	line := buf.String()
	assert.Contains(t, line, "test-format[")
	assert.Contains(t, line, "<DEBUG>: hello [logger_test.go:")
	assert.True(t, strings.HasSuffix(line, " a=1 b=2\n"), line)
}

func TestLoggerColorful(t *testing.T) {
	l := GetLogger("test-color")
	l.colorful = true
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Warn("careful")
	assert.Contains(t, buf.String(), "\033[1;33mWARNING\033[0m")
}

func TestSetLogLevel(t *testing.T) {
	l := GetLogger("test-level")
	SetLogLevel(logrus.ErrorLevel)
	defer SetLogLevel(logrus.InfoLevel)
	assert.Equal(t, logrus.ErrorLevel, l.GetLevel())
}

func TestBarLogsCarryID(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)
	defer func() {
		log.SetLevel(logrus.InfoLevel)
		log.SetOutput(logrus.StandardLogger().Out)
	}()

	bar := NewProgressBar(&bytes.Buffer{}, Config{Total: 1}, WithTerminal(FixedTerminal(80)))
	assert.NoError(t, bar.End())
	assert.Contains(t, buf.String(), "bar ended")
	assert.Contains(t, buf.String(), "kind=single")
	assert.Contains(t, buf.String(), " bar=")
}
