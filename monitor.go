package promsink

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Default label names for the log_events counter family.
const (
	DefaultLevelFieldName   = "level"
	DefaultLevelNoFieldName = "level_no"
)

// Monitor is a Sink decorator that records Prometheus metrics for the events
// it forwards. Every event increments one counter in the log_events family,
// chosen by the record's severity; a delegation failure additionally
// increments log_events_failed. The wrapped sink's result is returned
// unchanged, so callers treat a Monitor exactly like the sink it wraps.
//
// A Monitor is safe for concurrent use by multiple goroutines.
type Monitor struct {
	next   Sink
	events [levelCount]prometheus.Counter
	failed prometheus.Counter
}

// Log implements Sink. At most two counters are incremented per call; the
// level counter lookup is a fixed-index load, with no allocation and no
// label hashing.
func (m *Monitor) Log(rec Record, keyvals ...interface{}) error {
	m.events[rec.Level.Rank()-1].Inc()

	err := m.next.Log(rec, keyvals...)
	if err != nil {
		m.failed.Inc()
	}
	return err
}

// Builder assembles a Monitor. The zero value is not useful; start with
// NewBuilder. Setters return an updated copy, so a Builder may be configured
// in a chain:
//
//	mon, err := promsink.NewBuilder(sink).
//		WithRegistry(reg).
//		WithLevelFieldName("severity").
//		Build()
type Builder struct {
	next         Sink
	registry     prometheus.Registerer
	levelField   string
	levelNoField string
}

// NewBuilder returns a Builder for a Monitor wrapping next. The builder
// defaults to prometheus.DefaultRegisterer and the Default*FieldName label
// names.
func NewBuilder(next Sink) Builder {
	return Builder{
		next:         next,
		registry:     prometheus.DefaultRegisterer,
		levelField:   DefaultLevelFieldName,
		levelNoField: DefaultLevelNoFieldName,
	}
}

// WithRegistry sets the registry the Monitor's counters are registered with.
func (b Builder) WithRegistry(r prometheus.Registerer) Builder {
	b.registry = r
	return b
}

// WithLevelFieldName sets the label name carrying the level's display name.
func (b Builder) WithLevelFieldName(name string) Builder {
	b.levelField = name
	return b
}

// WithLevelNoFieldName sets the label name carrying the level's numeric rank.
func (b Builder) WithLevelNoFieldName(name string) Builder {
	b.levelNoField = name
	return b
}

// Build registers the Monitor's collectors and returns the assembled
// Monitor. It returns a *BuildError if the registry rejects either
// collector; in that case nothing usable was built and the registry may hold
// a partial registration, so builds are not retryable against the same
// registry. All registration work happens here, once, so Monitor.Log never
// has a registry failure to handle.
func (b Builder) Build() (*Monitor, error) {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "log_events",
		Help: "Log events emitted by this logger.",
	}, []string{b.levelField, b.levelNoField})
	if err := b.registry.Register(events); err != nil {
		return nil, &BuildError{Err: err}
	}

	m := &Monitor{next: b.next}
	for _, lvl := range Levels() {
		// WithLabelValues panics on label cardinality mismatch, which
		// here can only mean the enumeration and the label set above
		// disagree: a programming fault, not a runtime condition.
		m.events[lvl.Rank()-1] = events.WithLabelValues(lvl.String(), strconv.Itoa(lvl.Rank()))
	}

	failed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "log_events_failed",
		Help: "Log events which failed to be logged.",
	})
	if err := b.registry.Register(failed); err != nil {
		return nil, &BuildError{Err: err}
	}
	m.failed = failed

	return m, nil
}
