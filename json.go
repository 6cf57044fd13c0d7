package promsink

import (
	"encoding/json"
	"fmt"
	"io"
)

type jsonSink struct {
	io.Writer
	key string
}

// NewJSONSink returns a sink that marshals each event as a JSON object.
// Because fields are keys in a JSON object, they must be unique, and
// last-writer-wins. The log message is placed under the "msg" key; to change
// that, use the NewJSONSinkWithKey constructor.
func NewJSONSink(w io.Writer) Sink {
	return NewJSONSinkWithKey(w, "msg")
}

// NewJSONSinkWithKey is the same as NewJSONSink but allows the user to
// specify the key under which the log message is placed in the JSON object.
func NewJSONSinkWithKey(w io.Writer, messageKey string) Sink {
	return &jsonSink{
		Writer: w,
		key:    messageKey,
	}
}

func (l *jsonSink) Log(rec Record, keyvals ...interface{}) error {
	m := make(map[string]interface{}, len(keyvals)/2+3)
	for i := 0; i < len(keyvals); i += 2 {
		k := fmt.Sprint(keyvals[i])
		if i+1 < len(keyvals) {
			m[k] = jsonValue(keyvals[i+1])
		} else {
			m[k] = ErrMissingValue.Error()
		}
	}
	if !rec.Time.IsZero() {
		m["ts"] = rec.Time
	}
	if rec.Level != LevelNone {
		m["level"] = rec.Level.String()
	}
	m[l.key] = rec.Message
	return json.NewEncoder(l.Writer).Encode(m)
}

// jsonValue keeps error values readable: a bare error would marshal to {}.
func jsonValue(v interface{}) interface{} {
	switch x := v.(type) {
	case json.Marshaler:
		return x
	case error:
		return x.Error()
	default:
		return v
	}
}
