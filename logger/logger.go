package logger

import (
	"io"
	"os"
	"strings"

	"github.com/kinetic-cards/portfolio/config"
	"github.com/sirupsen/logrus"
)

// Setup will configure the global logrus logger from the logs section of the config
func Setup(cfg config.Config) {
	SetupWithOutput(cfg, os.Stdout)
}

// SetupWithOutput is Setup with a custom destination, used by the tests
func SetupWithOutput(cfg config.Config, out io.Writer) {
	logrus.SetOutput(out)

	if cfg.Logs.OutputLogsAsJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	logrus.SetLevel(StringToLogrusLogType(cfg.Logs.Level))
}

// StringToLogrusLogType will convert string to the right logrus level
// unknown values fall back to error level
func StringToLogrusLogType(logLevel string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "error":
		return logrus.ErrorLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	case "trace":
		return logrus.TraceLevel
	default:
		return logrus.ErrorLevel
	}
}
