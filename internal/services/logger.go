package services

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns this package's logger with the application level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

func logUpdate(entity string, id any, column string, err error) {
	entry := log.WithFields(logrus.Fields{
		"entity": entity,
		"id":     id,
		"column": column,
	})
	switch {
	case err == nil:
		entry.Info("Entity updated")
	case errors.Is(err, ErrNotFound):
		entry.Debug("Update skipped, entity not found")
	default:
		entry.WithError(err).Error("Entity update failed")
	}
}
