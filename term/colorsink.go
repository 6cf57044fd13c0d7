// Package term provides tools for logging to a terminal.
package term

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/logkit/promsink"
)

// Color is the abstract color, the zero value is the Default.
type Color uint8

const (
	NoColor = Color(iota)
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Default

	maxColor
)

var resetColorBytes = []byte("\x1b[0m")
var fgColorBytes [][]byte
var bgColorBytes [][]byte

func init() {
	for color := NoColor; color < maxColor; color++ {
		fgColorBytes = append(fgColorBytes, []byte(fmt.Sprintf("\x1b[%dm", 30+color)))
		bgColorBytes = append(bgColorBytes, []byte(fmt.Sprintf("\x1b[%dm", 40+color)))
	}
}

type FgBgColor struct {
	Fg, Bg Color
}

func (c FgBgColor) IsZero() bool {
	return c.Fg == NoColor && c.Bg == NoColor
}

// LevelColor colors records by severity: critical events white on red, error
// events red, warnings yellow, debug events green, trace events blue.
func LevelColor(rec promsink.Record) FgBgColor {
	switch rec.Level {
	case promsink.LevelCritical:
		return FgBgColor{Fg: White, Bg: Red}
	case promsink.LevelError:
		return FgBgColor{Fg: Red}
	case promsink.LevelWarning:
		return FgBgColor{Fg: Yellow}
	case promsink.LevelDebug:
		return FgBgColor{Fg: Green}
	case promsink.LevelTrace:
		return FgBgColor{Fg: Blue}
	default:
		return FgBgColor{}
	}
}

var _ = promsink.Sink((*colorSink)(nil))

// NewColorSink returns a sink that produces colored log records. Each record
// is formatted by the sink returned by newSink and colored as a whole
// according to the FgBgColor returned by the color function; see LevelColor.
// NewColorSink colors unconditionally; use NewSink to color only when the
// Writer is a terminal.
func NewColorSink(w io.Writer, newSink func(io.Writer) promsink.Sink, color func(promsink.Record) FgBgColor) promsink.Sink {
	if color == nil {
		panic("color func nil")
	}
	return &colorSink{
		w:           w,
		newSink:     newSink,
		color:       color,
		bufPool:     sync.Pool{New: func() interface{} { return &sinkBuf{} }},
		noColorSink: newSink(w),
	}
}

type colorSink struct {
	w           io.Writer
	newSink     func(io.Writer) promsink.Sink
	color       func(promsink.Record) FgBgColor
	bufPool     sync.Pool
	noColorSink promsink.Sink
}

func (l *colorSink) Log(rec promsink.Record, keyvals ...interface{}) error {
	color := l.color(rec)
	if color.IsZero() {
		return l.noColorSink.Log(rec, keyvals...)
	}

	sb := l.getSinkBuf()
	defer l.putSinkBuf(sb)
	if color.Fg != NoColor {
		sb.buf.Write(fgColorBytes[color.Fg])
	}
	if color.Bg != NoColor {
		sb.buf.Write(bgColorBytes[color.Bg])
	}
	err := sb.sink.Log(rec, keyvals...)
	if err != nil {
		return err
	}
	if color.Fg != NoColor || color.Bg != NoColor {
		sb.buf.Write(resetColorBytes)
	}
	_, err = io.Copy(l.w, sb.buf)
	return err
}

type sinkBuf struct {
	buf  *bytes.Buffer
	sink promsink.Sink
}

func (l *colorSink) getSinkBuf() *sinkBuf {
	sb := l.bufPool.Get().(*sinkBuf)
	if sb.buf == nil {
		sb.buf = &bytes.Buffer{}
		sb.sink = l.newSink(sb.buf)
	} else {
		sb.buf.Reset()
	}
	return sb
}

func (l *colorSink) putSinkBuf(sb *sinkBuf) {
	l.bufPool.Put(sb)
}
