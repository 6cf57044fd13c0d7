// Package promsink records Prometheus metrics for log events flowing through
// a sink pipeline.
//
// The fundamental interface is Sink. A Sink consumes a Record (timestamp,
// severity level, message) together with arbitrary key/value fields, and
// reports whether the event was handled. Sinks compose: the formatting,
// buffering and filtering sinks in this package all wrap another Sink.
//
// The Monitor sink is the reason this package exists. Placed anywhere in a
// sink stack, it counts every event that passes through it into the
// log_events counter family, labeled by severity, and counts delegation
// failures into log_events_failed. It is otherwise transparent: the inner
// sink's result is returned to the caller unchanged.
//
// Use the Builder to put a Monitor in an appropriate spot in the stack:
//
//	sink := promsink.NewLogfmtSink(os.Stdout)
//	async := promsink.NewAsyncSink(sink, 128)
//
//	mon, err := promsink.NewBuilder(async).Build()
//	if err != nil {
//		// a metric with the same name is already registered
//	}
//	logger := promsink.NewLogger(promsink.NewFilterSink(mon, promsink.AllowInfo()))
//
//	logger.Info("finished setting up")
//
// Concurrent Safety
//
// The Monitor is safe for concurrent use: its counters are independent atomic
// adds and its Log method never blocks beyond whatever the wrapped sink
// itself does. The formatting sinks require a concurrency-safe writer when
// shared; see SyncWriter, NewSyncSink and AsyncSink.
package promsink
