package logger

import (
	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// Init sets up the structured logger. JSON output is the default; call
// SetTextFormatter for development.
func Init(level string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter switches to human-readable log output.
func SetTextFormatter() {
	if Log != nil {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

func init() {
	// Default logger so packages can log before main calls Init.
	Init("info")
}
