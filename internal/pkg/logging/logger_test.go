//go:build unit

package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactFormatter_Format(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2026, 10, 14, 9, 30, 15, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "Service order updated",
		Data: logrus.Fields{
			"component":   "serviceorder",
			"interface":   "en5",
			"transaction": "6f1c2a9e-3b7d-4c1e-9a55-0d2f6b8e4a11",
			"new":         "[Wi-Fi USB]",
			"old":         "[USB Wi-Fi]",
		},
	}

	t.Run("WithTime", func(t *testing.T) {
		out, err := (&CompactFormatter{ShowTime: true}).Format(entry)
		require.NoError(t, err)
		assert.Equal(t, "[09:30:15][INFO][serviceorder][6f1c2a9e][en5] Service order updated (new=[Wi-Fi USB], old=[USB Wi-Fi])\n", string(out))
	})

	t.Run("ErrorTrails", func(t *testing.T) {
		failed := &logrus.Entry{
			Level:   logrus.ErrorLevel,
			Message: "Transaction failed",
			Data: logrus.Fields{
				"component":     "configurator",
				"transaction":   "tx-1",
				logrus.ErrorKey: errors.New("permission denied"),
			},
		}
		out, err := (&CompactFormatter{}).Format(failed)
		require.NoError(t, err)
		assert.Equal(t, "[ERROR][configurator][tx-1] Transaction failed: permission denied\n", string(out))
	})

	t.Run("WithoutFields", func(t *testing.T) {
		bare := &logrus.Entry{Level: logrus.WarnLevel, Message: "No USB candidates", Data: logrus.Fields{}}
		out, err := (&CompactFormatter{}).Format(bare)
		require.NoError(t, err)
		assert.Equal(t, "[WARNING] No USB candidates\n", string(out))
	})
}

func TestInitLogger(t *testing.T) {
	InitLogger(LogConfig{Level: "debug", Format: "json"})
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, GetLogger().Formatter)

	InitLogger(LogConfig{Level: "bogus", Format: "compact"})
	assert.Equal(t, logrus.InfoLevel, GetLogger().GetLevel())
	assert.Equal(t, &CompactFormatter{ShowTime: true}, GetLogger().Formatter)

	InitLogger(LogConfig{Level: "warn", Format: "xml"})
	assert.Equal(t, logrus.WarnLevel, GetLogger().GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, GetLogger().Formatter)

	entry := WithTransaction("configurator", "tx-9")
	assert.Equal(t, "tx-9", entry.Data["transaction"])
	assert.Equal(t, "configurator", entry.Data["component"])
}
