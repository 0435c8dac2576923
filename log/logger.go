package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface used by the timed map package.
// Every map carries its own Logger, tagged with the map name.
type Logger interface {
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

// make sure entryLogger implements the Logger interface.
var _ Logger = (*entryLogger)(nil)

// entryLogger writes through a logrus entry carrying the map name.
type entryLogger struct {
	*logrus.Entry
}

// make sure suppressedLogger implements the Logger interface.
var _ Logger = (*suppressedLogger)(nil)

type suppressedLogger struct{}

func (l *suppressedLogger) Info(args ...interface{})                  {}
func (l *suppressedLogger) Infof(format string, args ...interface{})  {}
func (l *suppressedLogger) Debug(args ...interface{})                 {}
func (l *suppressedLogger) Debugf(format string, args ...interface{}) {}
func (l *suppressedLogger) Warn(args ...interface{})                  {}
func (l *suppressedLogger) Warnf(format string, args ...interface{})  {}
func (l *suppressedLogger) Error(args ...interface{})                 {}
func (l *suppressedLogger) Errorf(format string, args ...interface{}) {}

// New creates a new logger instance with the specified name and logging level.
// A suppressed logger discards everything.
func New(name string, suppressed, debugLogs bool) Logger {
	return NewWithOutput(os.Stdout, name, suppressed, debugLogs)
}

// NewWithOutput is New with a caller supplied destination.
func NewWithOutput(w io.Writer, name string, suppressed, debugLogs bool) Logger {
	if suppressed {
		return &suppressedLogger{}
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)

	if debugLogs {
		l.SetLevel(logrus.DebugLevel)
	}

	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   false,
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		PadLevelText:    true,
	})

	return &entryLogger{Entry: l.WithField("timedmap", name)}
}
