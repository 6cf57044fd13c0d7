package promsink

// NewFilterSink wraps next and squelches events less severe than the allowed
// level. If no options are provided, only critical and error events pass.
// Events carrying LevelNone are passed through unfiltered; use the Logger
// front-end if every event should carry a level.
func NewFilterSink(next Sink, options ...FilterOption) Sink {
	l := &filterSink{
		next:    next,
		allowed: LevelError,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// FilterOption sets a parameter for the filter sink.
type FilterOption func(*filterSink)

// AllowAll is an alias for AllowTrace.
func AllowAll() FilterOption { return AllowTrace() }

// AllowTrace allows events of every severity to pass.
func AllowTrace() FilterOption { return allow(LevelTrace) }

// AllowDebug allows critical, error, warning, info and debug events to pass.
func AllowDebug() FilterOption { return allow(LevelDebug) }

// AllowInfo allows critical, error, warning and info events to pass.
func AllowInfo() FilterOption { return allow(LevelInfo) }

// AllowWarning allows critical, error and warning events to pass.
func AllowWarning() FilterOption { return allow(LevelWarning) }

// AllowError allows critical and error events to pass.
func AllowError() FilterOption { return allow(LevelError) }

// AllowCritical allows only critical events to pass.
func AllowCritical() FilterOption { return allow(LevelCritical) }

func allow(l Level) FilterOption {
	return func(f *filterSink) { f.allowed = l }
}

// ErrNotAllowed sets the error to return from Log when an event is
// squelched. By default it is nil: squelched events report success.
func ErrNotAllowed(err error) FilterOption {
	return func(f *filterSink) { f.errNotAllowed = err }
}

type filterSink struct {
	next          Sink
	allowed       Level
	errNotAllowed error
}

func (l *filterSink) Log(rec Record, keyvals ...interface{}) error {
	if rec.Level != LevelNone && rec.Level.Rank() > l.allowed.Rank() {
		return l.errNotAllowed
	}
	return l.next.Log(rec, keyvals...)
}
