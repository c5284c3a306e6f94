package logging

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // json, text, simple, or compact
}

const timestampFormat = "2006-01-02 15:04:05"

// shortTransactionLen keeps UUID prefixes readable on a terminal.
const shortTransactionLen = 8

// bracketFields are rendered as a [prefix] in this order and left out of the
// trailing field list.
var bracketFields = []string{"component", "transaction", "interface"}

// CompactFormatter renders one line per entry:
// [time][LEVEL][component][transaction][interface] message (k=v, ...): error
type CompactFormatter struct {
	ShowTime bool
}

// Format renders a single log entry
func (f *CompactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if f.ShowTime {
		fmt.Fprintf(b, "[%s]", entry.Time.Format("15:04:05"))
	}
	fmt.Fprintf(b, "[%s]", strings.ToUpper(entry.Level.String()))

	for _, key := range bracketFields {
		v, ok := entry.Data[key]
		if !ok {
			continue
		}
		s := fmt.Sprint(v)
		if key == "transaction" && len(s) > shortTransactionLen {
			s = s[:shortTransactionLen]
		}
		fmt.Fprintf(b, "[%s]", s)
	}

	b.WriteByte(' ')
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k == logrus.ErrorKey || isBracketField(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) > 0 {
		b.WriteString(" (")
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=%v", key, entry.Data[key])
		}
		b.WriteByte(')')
	}

	if err, ok := entry.Data[logrus.ErrorKey]; ok {
		fmt.Fprintf(b, ": %v", err)
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func isBracketField(key string) bool {
	for _, k := range bracketFields {
		if k == key {
			return true
		}
	}
	return false
}

// newFormatter maps a format name to a formatter. ok is false for unknown
// names, which fall back to text.
func newFormatter(format string) (logrus.Formatter, bool) {
	switch strings.ToLower(format) {
	case "json":
		return &logrus.JSONFormatter{TimestampFormat: timestampFormat}, true
	case "simple":
		return &CompactFormatter{ShowTime: false}, true
	case "compact":
		return &CompactFormatter{ShowTime: true}, true
	case "text", "":
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: timestampFormat}, true
	default:
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: timestampFormat}, false
	}
}

// InitLogger initializes the global logger with the provided configuration.
// Output goes to stderr so command output on stdout stays clean.
func InitLogger(config LogConfig) {
	Logger = logrus.New()
	Logger.SetOutput(os.Stderr)

	formatter, known := newFormatter(config.Format)
	Logger.SetFormatter(formatter)
	if !known {
		Logger.Warnf("Invalid log format '%s', defaulting to 'text'", config.Format)
	}

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
		Logger.Warnf("Invalid log level '%s', defaulting to 'info'", config.Level)
	}
	Logger.SetLevel(level)

	Logger.Debugf("Logger initialized with level: %s, format: %s", level.String(), config.Format)
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	if Logger == nil {
		InitLogger(LogConfig{Level: "info", Format: "simple"})
	}
	return Logger
}

func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

func WithComponentAndInterface(component, iface string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"component": component,
		"interface": iface,
	})
}

// WithTransaction tags every entry of one configurator run.
func WithTransaction(component, id string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"component":   component,
		"transaction": id,
	})
}
