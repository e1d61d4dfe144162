package domain

import "time"

// BlocksReport is the cached "active block" usage document.
type BlocksReport struct {
	Blocks []Block `json:"blocks"`
}

// Block is one usage-accounting window of the external usage source.
type Block struct {
	ID            string      `json:"id,omitempty"`
	StartTime     time.Time   `json:"startTime"`
	EndTime       time.Time   `json:"endTime"`
	ActualEndTime *time.Time  `json:"actualEndTime,omitempty"`
	IsActive      bool        `json:"isActive"`
	IsGap         bool        `json:"isGap"`
	TotalTokens   int64       `json:"totalTokens"`
	CostUSD       float64     `json:"costUSD"`
	Models        []string    `json:"models,omitempty"`
	TokenCounts   TokenCounts `json:"tokenCounts"`
}

// TokenCounts breaks a block's tokens down by category.
type TokenCounts struct {
	InputTokens              int64 `json:"inputTokens"`
	OutputTokens             int64 `json:"outputTokens"`
	CacheCreationInputTokens int64 `json:"cacheCreationInputTokens"`
	CacheReadInputTokens     int64 `json:"cacheReadInputTokens"`
}

// DailyReport is the cached aggregate usage document for the current day.
type DailyReport struct {
	Totals DailyTotals  `json:"totals"`
	Daily  []DailyEntry `json:"daily"`
}

// DailyTotals aggregates every entry of a DailyReport.
type DailyTotals struct {
	TotalCost   float64 `json:"totalCost"`
	TotalTokens int64   `json:"totalTokens"`
}

// DailyEntry is the usage of a single calendar day.
type DailyEntry struct {
	Date        string  `json:"date"`
	TotalTokens int64   `json:"totalTokens,omitempty"`
	TotalCost   float64 `json:"totalCost,omitempty"`
}

// UsagePayload is what the cache reader hands to consumers. Only the part
// matching Kind is populated.
type UsagePayload struct {
	Kind   CacheKind
	Blocks BlocksReport
	Daily  DailyReport
}

var (
	emptyBlocksPayload = []byte(`{"blocks":[]}`)
	emptyDailyPayload  = []byte(`{"totals":{"totalCost":0,"totalTokens":0},"daily":[]}`)
)

// EmptyPayload returns the safe default document of a kind. Callers get a fresh copy.
func EmptyPayload(kind CacheKind) []byte {
	src := emptyBlocksPayload
	if kind == KindDaily {
		src = emptyDailyPayload
	}
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

// BlockSummary is the renderer's view of the blocks document.
type BlockSummary struct {
	// Found is false when the document has no usable block at all.
	Found bool
	// Active reports whether the figures come from the active block rather
	// than the last known one.
	Active      bool
	TotalTokens int64
	CostUSD     float64
	// SessionElapsed is only meaningful when HasSession is set.
	SessionElapsed time.Duration
	HasSession     bool
}

// Summarize reduces the blocks document to what the status line shows.
//
// An active block whose end lies in the future marks a window that was just
// reset: the session is measured from end minus window, so a stale start
// time from the previous window is never counted. Without an active block
// the most recent non-gap block provides a last-known snapshot.
func (r BlocksReport) Summarize(now time.Time, window time.Duration) BlockSummary {
	for _, b := range r.Blocks {
		if !b.IsActive || b.IsGap {
			continue
		}
		summary := BlockSummary{
			Found:       true,
			Active:      true,
			TotalTokens: b.TotalTokens,
			CostUSD:     b.CostUSD,
		}
		start := b.StartTime
		if b.EndTime.After(now) {
			start = b.EndTime.Add(-window)
		}
		if !start.IsZero() {
			summary.HasSession = true
			summary.SessionElapsed = max(now.Sub(start), 0)
		}
		return summary
	}

	var last *Block
	for i := range r.Blocks {
		b := &r.Blocks[i]
		if b.IsGap {
			continue
		}
		if last == nil || !b.StartTime.Before(last.StartTime) {
			last = b
		}
	}
	if last == nil {
		return BlockSummary{}
	}
	return BlockSummary{
		Found:       true,
		TotalTokens: last.TotalTokens,
		CostUSD:     last.CostUSD,
	}
}

// DailySummary is the renderer's view of the daily document.
type DailySummary struct {
	CostUSD     float64
	TotalTokens int64
}

// Summarize reduces the daily document to its totals.
func (r DailyReport) Summarize() DailySummary {
	return DailySummary{
		CostUSD:     r.Totals.TotalCost,
		TotalTokens: r.Totals.TotalTokens,
	}
}
