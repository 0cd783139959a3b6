// Package monitoring holds the engine's diagnostic logging hooks.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but
// may be replaced by SetLogger. Tests and the sweep tool can redirect or
// mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Silence mutes the package logger and returns a restore function, for
// callers that only need logging off for a bounded stretch.
func Silence() (restore func()) {
	prev := Logf
	SetLogger(nil)
	return func() { Logf = prev }
}
