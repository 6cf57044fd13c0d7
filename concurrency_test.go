package promsink_test

import (
	"sync"
	"testing"

	"github.com/logkit/promsink"
)

// These tests are designed to be run with the race detector.

func testConcurrency(t *testing.T, sink promsink.Sink) {
	t.Helper()
	for _, n := range []int{10, 100, 500} {
		wg := sync.WaitGroup{}
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func() { spam(sink); wg.Done() }()
		}
		wg.Wait()
	}
}

func spam(sink promsink.Sink) {
	for i := 0; i < 100; i++ {
		sink.Log(promsink.Record{Level: promsink.LevelInfo, Message: "spam"}, "key", i)
	}
}
