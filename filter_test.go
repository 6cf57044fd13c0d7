package promsink_test

import (
	"errors"
	"testing"

	"github.com/logkit/promsink"
)

func TestFilterSinkAllows(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		option promsink.FilterOption
		level  promsink.Level
		pass   bool
	}{
		{promsink.AllowAll(), promsink.LevelTrace, true},
		{promsink.AllowDebug(), promsink.LevelTrace, false},
		{promsink.AllowDebug(), promsink.LevelDebug, true},
		{promsink.AllowInfo(), promsink.LevelDebug, false},
		{promsink.AllowInfo(), promsink.LevelInfo, true},
		{promsink.AllowInfo(), promsink.LevelError, true},
		{promsink.AllowWarning(), promsink.LevelInfo, false},
		{promsink.AllowError(), promsink.LevelWarning, false},
		{promsink.AllowCritical(), promsink.LevelError, false},
		{promsink.AllowCritical(), promsink.LevelCritical, true},
	} {
		passed := false
		capture := promsink.SinkFunc(func(promsink.Record, ...interface{}) error {
			passed = true
			return nil
		})

		sink := promsink.NewFilterSink(capture, tc.option)
		if err := sink.Log(promsink.Record{Level: tc.level}); err != nil {
			t.Fatal(err)
		}
		if passed != tc.pass {
			t.Errorf("level %v: passed %v, want %v", tc.level, passed, tc.pass)
		}
	}
}

func TestFilterSinkDefaultAllowsError(t *testing.T) {
	t.Parallel()
	passed := 0
	capture := promsink.SinkFunc(func(promsink.Record, ...interface{}) error {
		passed++
		return nil
	})

	sink := promsink.NewFilterSink(capture)
	sink.Log(promsink.Record{Level: promsink.LevelError})
	sink.Log(promsink.Record{Level: promsink.LevelWarning})
	if got, want := passed, 1; got != want {
		t.Errorf("passed: got %d, want %d", got, want)
	}
}

func TestFilterSinkErrNotAllowed(t *testing.T) {
	t.Parallel()
	squelched := errors.New("squelched")
	sink := promsink.NewFilterSink(promsink.NewNopSink(), promsink.AllowError(), promsink.ErrNotAllowed(squelched))

	if got := sink.Log(promsink.Record{Level: promsink.LevelDebug}); got != squelched {
		t.Errorf("got %v, want %v", got, squelched)
	}
	if got := sink.Log(promsink.Record{Level: promsink.LevelError}); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestFilterSinkPassesNoLevel(t *testing.T) {
	t.Parallel()
	passed := false
	capture := promsink.SinkFunc(func(promsink.Record, ...interface{}) error {
		passed = true
		return nil
	})

	sink := promsink.NewFilterSink(capture, promsink.AllowCritical())
	if err := sink.Log(promsink.Record{}); err != nil {
		t.Fatal(err)
	}
	if !passed {
		t.Error("record without a level should pass unfiltered")
	}
}
