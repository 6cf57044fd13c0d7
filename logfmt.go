package promsink

import (
	"bytes"
	"io"
	"sync"

	"github.com/go-logfmt/logfmt"
)

type logfmtSink struct {
	w io.Writer
}

// NewLogfmtSink returns a sink that encodes each event to the Writer in
// logfmt format, as ts, level and msg fields followed by the event's own
// keyvals. Each log event produces no more than one call to w.Write. The
// passed Writer must be safe for concurrent use by multiple goroutines if
// the returned Sink will be used concurrently.
func NewLogfmtSink(w io.Writer) Sink {
	return &logfmtSink{w}
}

func (l *logfmtSink) Log(rec Record, keyvals ...interface{}) error {
	enc := logfmtEncoderPool.Get().(*logfmtEncoder)
	enc.Reset()
	defer logfmtEncoderPool.Put(enc)

	if !rec.Time.IsZero() {
		if err := enc.EncodeKeyval("ts", rec.Time); err != nil {
			return err
		}
	}
	if rec.Level != LevelNone {
		if err := enc.EncodeKeyval("level", rec.Level); err != nil {
			return err
		}
	}
	if err := enc.EncodeKeyval("msg", rec.Message); err != nil {
		return err
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, ErrMissingValue)
	}
	if err := enc.EncodeKeyvals(keyvals...); err != nil {
		return err
	}
	if err := enc.EndRecord(); err != nil {
		return err
	}

	_, err := l.w.Write(enc.buf.Bytes())
	return err
}

type logfmtEncoder struct {
	*logfmt.Encoder
	buf bytes.Buffer
}

func (enc *logfmtEncoder) Reset() {
	enc.Encoder.Reset()
	enc.buf.Reset()
}

var logfmtEncoderPool = sync.Pool{
	New: func() interface{} {
		var enc logfmtEncoder
		enc.Encoder = logfmt.NewEncoder(&enc.buf)
		return &enc
	},
}
