package promsink_test

import (
	"testing"

	"github.com/logkit/promsink"
)

func TestLevelNamesAndRanks(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		level promsink.Level
		name  string
		rank  int
	}{
		{promsink.LevelNone, "none", 0},
		{promsink.LevelCritical, "critical", 1},
		{promsink.LevelError, "error", 2},
		{promsink.LevelWarning, "warning", 3},
		{promsink.LevelInfo, "info", 4},
		{promsink.LevelDebug, "debug", 5},
		{promsink.LevelTrace, "trace", 6},
	} {
		if got, want := tc.level.String(), tc.name; got != want {
			t.Errorf("String: got %q, want %q", got, want)
		}
		if got, want := tc.level.Rank(), tc.rank; got != want {
			t.Errorf("%s Rank: got %d, want %d", tc.name, got, want)
		}
	}
}

func TestLevelsExcludeSentinel(t *testing.T) {
	t.Parallel()
	levels := promsink.Levels()
	if got, want := len(levels), 6; got != want {
		t.Fatalf("len(Levels()): got %d, want %d", got, want)
	}
	for i, l := range levels {
		if l == promsink.LevelNone {
			t.Error("Levels() contains the sentinel level")
		}
		if got, want := l.Rank(), i+1; got != want {
			t.Errorf("Levels()[%d].Rank(): got %d, want %d", i, got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	for _, l := range promsink.Levels() {
		got, err := promsink.ParseLevel(l.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != l {
			t.Errorf("round trip: got %v, want %v", got, l)
		}
	}
	if _, err := promsink.ParseLevel("shouting"); err == nil {
		t.Error("expected error for unknown level name")
	}
}
