// Package logrus provides a bridge from the promsink.Sink interface to a
// Logrus logger.
package logrus

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/logkit/promsink"
)

type logrusSink struct {
	logrus.FieldLogger
}

// NewSink returns a promsink.Sink that forwards each event to a Logrus
// logger at the matching Logrus level. Logrus has no critical level, so
// critical events are forwarded as errors; logrus.FieldLogger has no trace
// method, so trace events are forwarded as debug.
func NewSink(logger logrus.FieldLogger) promsink.Sink {
	return &logrusSink{logger}
}

func (l *logrusSink) Log(rec promsink.Record, keyvals ...interface{}) error {
	fields := logrus.Fields{}
	for i := 0; i < len(keyvals); i += 2 {
		if i+1 < len(keyvals) {
			fields[fmt.Sprint(keyvals[i])] = keyvals[i+1]
		} else {
			fields[fmt.Sprint(keyvals[i])] = promsink.ErrMissingValue
		}
	}

	entry := l.WithFields(fields)
	if !rec.Time.IsZero() {
		entry = entry.WithTime(rec.Time)
	}

	switch rec.Level {
	case promsink.LevelCritical, promsink.LevelError:
		entry.Error(rec.Message)
	case promsink.LevelWarning:
		entry.Warn(rec.Message)
	case promsink.LevelInfo:
		entry.Info(rec.Message)
	case promsink.LevelDebug, promsink.LevelTrace:
		entry.Debug(rec.Message)
	default:
		entry.Print(rec.Message)
	}

	return nil
}
