package log

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Log wraps a logrus instance with the service name attached to every entry.
type Log struct {
	AppName string
	Logger  *logrus.Logger
}

func InitLogger(v *viper.Viper) Log {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(v.GetString("log.level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	return Log{
		AppName: v.GetString("app.name"),
		Logger:  l,
	}
}

func (l Log) Info(context, message, scope, meta string) {
	if l.Logger == nil {
		return
	}
	l.Logger.WithFields(logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
	}).Info(message)
}

func (l Log) Warn(context, message, scope, meta string) {
	if l.Logger == nil {
		return
	}
	l.Logger.WithFields(logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
	}).Warn(message)
}

func (l Log) Error(context, message, scope, meta string) {
	if l.Logger == nil {
		return
	}
	l.Logger.WithFields(logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
	}).Error(message)
}
