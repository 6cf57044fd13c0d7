package promsink

import (
	"errors"
	"time"
)

// A Record is one log event. The Message and optional key/value fields are
// opaque to every sink in this package except the formatters; the Level is
// what the Monitor and FilterSink act on.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
}

// Sink is the least-common-denominator interface for all log consumers.
// Implementations decide what handling an event means: formatting it,
// buffering it, forwarding it, or dropping it.
type Sink interface {
	Log(rec Record, keyvals ...interface{}) error
}

// SinkFunc is an adapter to allow use of ordinary functions as Sinks. If f is
// a function with the appropriate signature, SinkFunc(f) is a Sink that calls
// f.
type SinkFunc func(rec Record, keyvals ...interface{}) error

// Log implements Sink by calling f(rec, keyvals...).
func (f SinkFunc) Log(rec Record, keyvals ...interface{}) error {
	return f(rec, keyvals...)
}

// ErrMissingValue is used as the value for a key with no matching value in an
// odd-length keyvals slice.
var ErrMissingValue = errors.New("(MISSING)")

// With returns a Sink that includes keyvals in every log event, ahead of the
// event's own fields. Valuer elements among the bound keyvals are evaluated
// on each Log call.
func With(sink Sink, keyvals ...interface{}) Sink {
	if len(keyvals) == 0 {
		return sink
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, ErrMissingValue)
	}
	return SinkFunc(func(rec Record, kvs ...interface{}) error {
		all := make([]interface{}, 0, len(keyvals)+len(kvs))
		all = append(all, bindValues(keyvals)...)
		all = append(all, kvs...)
		return sink.Log(rec, all...)
	})
}
