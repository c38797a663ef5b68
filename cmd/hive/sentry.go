package main

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// sentryHook forwards error-and-above log entries to sentry.
type sentryHook struct {
	levels []logrus.Level
}

func newSentryHook(dsn, release string) (*sentryHook, error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		AttachStacktrace: true,
		Release:          release,
		ServerName:       "hive",
	}); err != nil {
		return nil, fmt.Errorf("failed to init sentry: %w", err)
	}

	return &sentryHook{
		levels: []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel},
	}, nil
}

func (h sentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h sentryHook) Fire(entry *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Message = entry.Message
	event.Level = sentryLevel(entry.Level)

	for k, v := range entry.Data {
		if k == logrus.ErrorKey {
			if err, ok := v.(error); ok {
				event.Message = fmt.Sprintf("%s: %s", entry.Message, err)
				continue
			}
		}
		event.Extra[k] = v
	}

	sentry.CaptureEvent(event)

	return nil
}

func sentryLevel(l logrus.Level) sentry.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	default:
		return sentry.LevelError
	}
}
