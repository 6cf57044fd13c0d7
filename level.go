package promsink

import "fmt"

// Level is the severity of a log event. Levels are ordered by rank: the
// lower the rank, the more severe the event. Rank 0 is reserved as the
// "no level" sentinel and is never produced by the Logger front-end.
type Level int

const (
	LevelNone Level = iota
	LevelCritical
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
	LevelTrace
)

// levelCount is the number of real (non-sentinel) severity levels. The
// Monitor's counter table is sized by it; the assignment below fails to
// compile if the enumeration and the table ever drift apart.
const levelCount = 6

var _ [levelCount]struct{} = [LevelTrace]struct{}{}

var levelNames = [...]string{
	LevelNone:     "none",
	LevelCritical: "critical",
	LevelError:    "error",
	LevelWarning:  "warning",
	LevelInfo:     "info",
	LevelDebug:    "debug",
	LevelTrace:    "trace",
}

// String returns the stable lowercase name of the level.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// Rank returns the numeric rank of the level. Ranks are 1-based for real
// levels; LevelNone has rank 0.
func (l Level) Rank() int { return int(l) }

// Levels returns the real severity levels in ascending rank order,
// LevelCritical first.
func Levels() []Level {
	ls := make([]Level, 0, levelCount)
	for l := LevelCritical; l <= LevelTrace; l++ {
		ls = append(ls, l)
	}
	return ls
}

// ParseLevel returns the level with the given name.
func ParseLevel(name string) (Level, error) {
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelNone, fmt.Errorf("promsink: unknown level %q", name)
}
