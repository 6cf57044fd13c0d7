package promsink

import (
	"errors"
	"io"
	"sync"
)

// SyncWriter synchronizes concurrent writes to an io.Writer.
type SyncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSyncWriter returns a new SyncWriter. The returned writer is safe for
// concurrent use by multiple goroutines.
func NewSyncWriter(w io.Writer) *SyncWriter {
	return &SyncWriter{w: w}
}

// Write writes p to the underlying io.Writer. If another write is already in
// progress, the calling goroutine blocks until the SyncWriter is available.
func (w *SyncWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	n, err = w.w.Write(p)
	w.mu.Unlock()
	return n, err
}

// syncSink provides concurrent safe logging for another Sink.
type syncSink struct {
	mu   sync.Mutex
	sink Sink
}

// NewSyncSink returns a sink that synchronizes concurrent use of the wrapped
// sink. When multiple goroutines use the SyncSink concurrently only one
// goroutine will be allowed to log to the wrapped sink at a time. The other
// goroutines will block until the sink is available.
func NewSyncSink(sink Sink) Sink {
	return &syncSink{sink: sink}
}

func (l *syncSink) Log(rec Record, keyvals ...interface{}) error {
	l.mu.Lock()
	err := l.sink.Log(rec, keyvals...)
	l.mu.Unlock()
	return err
}

// AsyncSink provides buffered asynchronous and concurrent safe logging for
// another sink.
//
// If the wrapped sink's Log method ever returns an error, the AsyncSink will
// stop processing log events and make the error available via the Err
// method. Any unprocessed log events in the buffer will be lost.
type AsyncSink struct {
	sink   Sink
	eventC chan asyncEvent

	stopping chan struct{}
	stopped  chan struct{}

	mu  sync.Mutex
	err error
}

type asyncEvent struct {
	rec     Record
	keyvals []interface{}
}

// NewAsyncSink returns a new AsyncSink that logs to sink and can buffer up
// to size log events before overflowing.
func NewAsyncSink(sink Sink, size int) *AsyncSink {
	l := &AsyncSink{
		sink:     sink,
		eventC:   make(chan asyncEvent, size),
		stopping: make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go l.run()
	return l
}

// run forwards log events from l.eventC to l.sink.
func (l *AsyncSink) run() {
	defer close(l.stopped)
	for e := range l.eventC {
		err := l.sink.Log(e.rec, e.keyvals...)
		if err != nil {
			l.mu.Lock()
			l.stop(err)
			l.mu.Unlock()
			return
		}
	}
}

// caller must hold l.mu
func (l *AsyncSink) stop(err error) {
	if err != nil && l.err == nil {
		l.err = err
	}
	select {
	case <-l.stopping:
		// already stopping, do nothing
	default:
		close(l.stopping)
		close(l.eventC)
	}
}

// Log queues the event for logging by the wrapped Sink. Log may be called
// concurrently by multiple goroutines. If the buffer is full, Log returns
// ErrAsyncSinkOverflow and the event is not queued. If the AsyncSink is
// stopping, Log returns ErrAsyncSinkStopping.
func (l *AsyncSink) Log(rec Record, keyvals ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	select {
	case <-l.stopping:
		return ErrAsyncSinkStopping
	default:
	}

	select {
	case l.eventC <- asyncEvent{rec: rec, keyvals: keyvals}:
		return nil
	default:
		return ErrAsyncSinkOverflow
	}
}

// Errors returned by AsyncSink.
var (
	ErrAsyncSinkStopping = errors.New("async sink: sink stopped")
	ErrAsyncSinkOverflow = errors.New("async sink: log buffer overflow")
)

// Stop stops the AsyncSink. After Stop returns the sink will not accept new
// log events. Log events queued prior to calling Stop will be logged.
func (l *AsyncSink) Stop() {
	l.mu.Lock()
	l.stop(nil)
	l.mu.Unlock()
}

// Stopping returns a channel that is closed after Stop is called.
func (l *AsyncSink) Stopping() <-chan struct{} {
	return l.stopping
}

// Stopped returns a channel that is closed after Stop is called and all log
// events have been sent to the wrapped sink.
func (l *AsyncSink) Stopped() <-chan struct{} {
	return l.stopped
}

// Err returns the first error returned by the wrapped sink.
func (l *AsyncSink) Err() error {
	l.mu.Lock()
	err := l.err
	l.mu.Unlock()
	return err
}
