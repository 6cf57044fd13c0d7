package term

import (
	"io"

	xterm "golang.org/x/term"

	"github.com/logkit/promsink"
)

// NewSink returns a sink that takes advantage of terminal features if
// possible. Log events are formatted by the sink returned by newSink. If w
// is a terminal each log event is colored according to the color function;
// otherwise events pass through to newSink(w) uncolored.
func NewSink(w io.Writer, newSink func(io.Writer) promsink.Sink, color func(promsink.Record) FgBgColor) promsink.Sink {
	fw, ok := w.(FdWriter)
	if !ok || !IsTerminal(fw.Fd()) {
		return newSink(w)
	}
	return NewColorSink(fw, newSink, color)
}

// An FdWriter is a Writer that has a file descriptor.
type FdWriter interface {
	io.Writer
	Fd() uintptr
}

// IsTerminal reports whether fd is connected to a terminal.
func IsTerminal(fd uintptr) bool {
	return xterm.IsTerminal(int(fd))
}
