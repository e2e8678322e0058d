package middleware

import (
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger for request-level events
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns this package's logger with the application level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}
