package errlog

import "time"

// SetClock replaces the wall clock for tests.
func (l *Log) SetClock(now func() time.Time) {
	l.now = now
}

// FormatLine exposes formatLine for tests.
var FormatLine = formatLine
