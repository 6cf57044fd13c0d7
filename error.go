package promsink

// BuildError is returned by Builder.Build when the metrics registry rejects
// one of the Monitor's collectors, typically because a metric with the same
// name is already registered. It is the only error this package originates.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string {
	return "promsink: registering metrics: " + e.Err.Error()
}

// Unwrap returns the underlying registry error, so callers can reach e.g.
// prometheus.AlreadyRegisteredError with errors.As.
func (e *BuildError) Unwrap() error { return e.Err }
