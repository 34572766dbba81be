package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// captureLog sets up the logger to write to a buffer and returns the buffer.
func captureLog(cfg LogConfig) *bytes.Buffer {
	var buf bytes.Buffer
	SetupLogging(cfg)
	logger = log.NewWithOptions(&buf, log.Options{
		Level:           logger.GetLevel(),
		ReportTimestamp: cfg.resolveTimestamps(),
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
	return &buf
}

// resolveTimestamps applies the same logic as SetupLogging for test verification.
func (c LogConfig) resolveTimestamps() bool {
	if c.Verbose {
		return true
	}
	if c.Timestamps != nil {
		return *c.Timestamps
	}
	return true
}

func TestSetupLogging_TimestampDefaultOn(t *testing.T) {
	buf := captureLog(LogConfig{})
	Info("test")
	assert.Contains(t, buf.String(), ":", "default output should contain timestamp separator")
}

func TestSetupLogging_TimestampExplicitlyDisabled(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(false)})
	Info("hello")
	out := buf.String()
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, strings.TrimSpace(out),
		"output should not start with a timestamp")
}

func TestSetupLogging_VerboseEnablesDebugLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}

func TestSetupLogging_DefaultInfoLevel(t *testing.T) {
	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}

func TestDebugHiddenAtInfoLevel(t *testing.T) {
	buf := captureLog(LogConfig{})
	Debug("hidden-msg")
	assert.NotContains(t, buf.String(), "hidden-msg")
}

func TestProjectLogger_HasPrefix(t *testing.T) {
	SetupLogging(LogConfig{})
	projectLog := ProjectLogger("demo-api")
	assert.NotNil(t, projectLog)
	assert.Contains(t, projectLog.GetPrefix(), "demo-api")
}

func TestProjectLogger_InheritsLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	projectLog := ProjectLogger("demo-api")
	assert.Equal(t, log.DebugLevel, projectLog.GetLevel())
}

func TestPrintln(t *testing.T) {
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	defer func() { stdout = old }()

	Println("hello")
	Print("world")

	assert.Equal(t, "hello\nworld", buf.String())
}
