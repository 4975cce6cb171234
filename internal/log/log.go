// Package log is a small leveled debug logger for diagnosing oracle calls
// and pipeline stages. It stays silent unless a level is enabled.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
)

// Level controls debug verbosity.
type Level int32

const (
	Off      Level = iota // no debug output
	Basic                 // stage progress
	Detailed              // per-item counts, fallbacks
	Trace                 // request/response summaries
	Wire                  // raw payloads
)

// LevelFromInt clamps n into the valid level range.
func LevelFromInt(n int) Level {
	if n <= 0 {
		return Off
	}
	if n >= int(Wire) {
		return Wire
	}
	return Level(n)
}

var (
	current atomic.Int32
	output  io.Writer = os.Stderr
)

// SetLevel enables output at l and below.
func SetLevel(l Level) { current.Store(int32(l)) }

// CurrentLevel reports the active level.
func CurrentLevel() Level { return Level(current.Load()) }

// Logf writes a formatted line when level l is enabled.
func Logf(l Level, format string, args ...any) {
	if l == Off || CurrentLevel() < l {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(output, msg)
}
