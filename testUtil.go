package main

import (
	"log"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"gotest.tools/assert"
)

func testSettings() configSettings {
	s := defaultSettings()
	s.settings[sButtons] = "none"
	s.settings[sListen] = ""
	return s
}

func logCaller(pc uintptr, file string, line int, ok bool) {
	if !ok {
		file = "?"
		line = 0
	}

	fn := runtime.FuncForPC(pc)
	var fnName string
	if fn == nil {
		fnName = "?()"
	} else {
		dotName := filepath.Ext(fn.Name())
		fnName = strings.TrimLeft(dotName, ".") + "()"
	}

	log.Printf("Starting %s (%s:%d)", fnName, filepath.Base(file), line)
}

func testRuntime() (runtimeConfig, clockwork.FakeClock, commChannels) {
	// make rt for test, log the start of the test
	logCaller(runtime.Caller(1))
	rt := initTestRuntime(testSettings())
	return rt, rt.clock.(clockwork.FakeClock), rt.comms
}

// testBlockDuration walks the fake clock forward in loop-sized steps,
// waiting for the loop to be back asleep between steps
func testBlockDuration(clock clockwork.FakeClock, step time.Duration, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		clock.BlockUntil(1)
		clock.Advance(step)
	}
	clock.BlockUntil(1)
}

func testQuit(rt runtimeConfig, clock clockwork.FakeClock) {
	close(rt.comms.quit)
	clock.Advance(dEffectSleep)
	wg.Wait()
}

func effectRead(t *testing.T, c chan displayEffect) displayEffect {
	select {
	case e := <-c:
		return e
	default:
		assert.Assert(t, false, "Nothing to read from effects channel")
		return displayEffect{}
	}
}
