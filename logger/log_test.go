package logger_test

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/teneleven/advance/logger"
	"github.com/teneleven/advance/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "test", "this is a test")

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: this is a test\n")
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "test", "this is a test")
	logger.Log(logger.Allow, "test", "this is a test")

	// repeated entries are coalesced into one line
	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: this is a test (repeat x2)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "test", "one")
	logger.Log(logger.Allow, "test", "two")
	logger.Log(logger.Allow, "test", "three")

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.ExpectEquality(t, s.String(), "test: two\ntest: three\n")

	// a negative number means the entire log
	s.Reset()
	logger.Tail(s, -1)
	test.ExpectEquality(t, s.String(), "test: one\ntest: two\ntest: three\n")
}

// the log is written from the engine loop while the jukebox and gui
// goroutines read it. run with the race detector enabled
func TestConcurrentAccess(t *testing.T) {
	logger.Clear()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			logger.Logf(logger.Allow, "test", "entry %d", i)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			logger.Tail(io.Discard, 10)
		}
	}()

	wg.Wait()
}

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	logger.Clear()
	logger.Log(deny{}, "test", "should not appear")

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "")
}
