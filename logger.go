package promsink

// Logger is a leveled front-end over a Sink. It stamps each event with the
// current time and a real severity level, so records produced through it
// never carry LevelNone.
type Logger struct {
	sink      Sink
	timestamp Timestamp
}

// LoggerOption sets a parameter for a Logger.
type LoggerOption func(*Logger)

// WithTimestamp sets the Timestamp used to stamp records. By default,
// DefaultTimestamp is used.
func WithTimestamp(t Timestamp) LoggerOption {
	return func(l *Logger) { l.timestamp = t }
}

// NewLogger returns a Logger emitting to sink.
func NewLogger(sink Sink, options ...LoggerOption) Logger {
	l := Logger{
		sink:      sink,
		timestamp: DefaultTimestamp,
	}
	for _, option := range options {
		option(&l)
	}
	return l
}

// Critical logs msg and keyvals at LevelCritical.
func (l Logger) Critical(msg string, keyvals ...interface{}) error {
	return l.log(LevelCritical, msg, keyvals)
}

// Error logs msg and keyvals at LevelError.
func (l Logger) Error(msg string, keyvals ...interface{}) error {
	return l.log(LevelError, msg, keyvals)
}

// Warn logs msg and keyvals at LevelWarning.
func (l Logger) Warn(msg string, keyvals ...interface{}) error {
	return l.log(LevelWarning, msg, keyvals)
}

// Info logs msg and keyvals at LevelInfo.
func (l Logger) Info(msg string, keyvals ...interface{}) error {
	return l.log(LevelInfo, msg, keyvals)
}

// Debug logs msg and keyvals at LevelDebug.
func (l Logger) Debug(msg string, keyvals ...interface{}) error {
	return l.log(LevelDebug, msg, keyvals)
}

// Trace logs msg and keyvals at LevelTrace.
func (l Logger) Trace(msg string, keyvals ...interface{}) error {
	return l.log(LevelTrace, msg, keyvals)
}

func (l Logger) log(lvl Level, msg string, keyvals []interface{}) error {
	rec := Record{
		Time:    l.timestamp(),
		Level:   lvl,
		Message: msg,
	}
	return l.sink.Log(rec, bindValues(keyvals)...)
}
