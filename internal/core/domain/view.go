package domain

import "time"

// StatusView is everything the renderer needs for one status line.
type StatusView struct {
	Model  string
	Dir    string
	Branch string

	// Processing is the time since the last prompt was submitted.
	Processing    time.Duration
	HasProcessing bool

	Block BlockSummary
	Daily DailySummary
}
