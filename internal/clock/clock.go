package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// SleepFunc blocks for the supplied duration. Override in tests to avoid
// waiting out the REPL warm-up delay for real.
var SleepFunc = time.Sleep

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Sleep is a thin wrapper around SleepFunc.
func Sleep(d time.Duration) { SleepFunc(d) }
