package term_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/logkit/promsink"
	"github.com/logkit/promsink/term"
)

func TestColorSink(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	sink := term.NewColorSink(buf, promsink.NewLogfmtSink, term.LevelColor)

	if err := sink.Log(promsink.Record{Level: promsink.LevelError, Message: "boom"}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\x1b[31mlevel=error msg=boom\n\x1b[0m"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	buf.Reset()
	if err := sink.Log(promsink.Record{Level: promsink.LevelCritical, Message: "worse"}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\x1b[37m\x1b[41mlevel=critical msg=worse\n\x1b[0m"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestColorSinkUncolored(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	sink := term.NewColorSink(buf, promsink.NewLogfmtSink, term.LevelColor)

	if err := sink.Log(promsink.Record{Level: promsink.LevelInfo, Message: "ok"}, "k", "v"); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "level=info msg=ok k=v\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewSinkNonTerminal(t *testing.T) {
	t.Parallel()

	// A bytes.Buffer has no file descriptor, so NewSink must fall back to
	// the plain formatter: no escape sequences may reach the writer.
	buf := &bytes.Buffer{}
	sink := term.NewSink(buf, promsink.NewLogfmtSink, term.LevelColor)

	if err := sink.Log(promsink.Record{Level: promsink.LevelError, Message: "boom"}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "level=error msg=boom\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewSinkNonTerminalFd(t *testing.T) {
	t.Parallel()

	f, err := os.CreateTemp(t.TempDir(), "log")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// A regular file has a descriptor but is not a terminal.
	sink := term.NewSink(f, promsink.NewLogfmtSink, term.LevelColor)
	if err := sink.Log(promsink.Record{Level: promsink.LevelError, Message: "boom"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	b, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "level=error msg=boom\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLevelColor(t *testing.T) {
	t.Parallel()
	if c := term.LevelColor(promsink.Record{Level: promsink.LevelInfo}); !c.IsZero() {
		t.Errorf("info should be uncolored, got %+v", c)
	}
	if c := term.LevelColor(promsink.Record{Level: promsink.LevelWarning}); c.Fg != term.Yellow {
		t.Errorf("warning fg: got %v, want yellow", c.Fg)
	}
}
