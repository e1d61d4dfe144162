// Package render formats the status line.
package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/ui/output"
	"go.trai.ch/tally/internal/ui/style"
)

// Renderer implements ports.Renderer.
type Renderer struct {
	profile func() termenv.Profile
}

// New creates a Renderer using the status-line color profile.
func New() *Renderer {
	return &Renderer{profile: output.ColorProfile}
}

// NewWithProfile creates a Renderer with a fixed color profile.
func NewWithProfile(profile termenv.Profile) *Renderer {
	return &Renderer{profile: func() termenv.Profile { return profile }}
}

// Render writes the view as a single line. Empty segments are skipped.
func (r *Renderer) Render(w io.Writer, view domain.StatusView) error {
	out := output.NewWithProfile(w, r.profile)

	paint := func(color lipgloss.Color, text string) string {
		return out.String(text).Foreground(out.Color(string(color))).String()
	}

	var segments []string

	if view.Model != "" {
		segments = append(segments, paint(style.Iris, style.ModelIcon+" "+view.Model))
	}
	if view.HasProcessing {
		segments = append(segments, paint(style.Yellow, style.TimerIcon+" "+FormatDuration(view.Processing)))
	}
	if view.Block.HasSession {
		segments = append(segments, paint(style.Sky, style.SessionIcon+" "+FormatDuration(view.Block.SessionElapsed)))
	}
	if view.Block.Found {
		color := style.Green
		if !view.Block.Active {
			color = style.Slate
		}
		text := fmt.Sprintf("%s %s (%s)", style.CostIcon, FormatCost(view.Block.CostUSD), FormatTokens(view.Block.TotalTokens))
		segments = append(segments, paint(color, text))
	}
	if view.Daily.CostUSD > 0 || view.Daily.TotalTokens > 0 {
		segments = append(segments, paint(style.Green, style.DailyIcon+" "+FormatCost(view.Daily.CostUSD)+" today"))
	}
	if view.Branch != "" {
		segments = append(segments, paint(style.Sky, style.BranchIcon+" "+view.Branch))
	}
	if view.Dir != "" {
		segments = append(segments, paint(style.Slate, style.DirIcon+" "+filepath.Base(view.Dir)))
	}

	_, err := fmt.Fprintln(w, strings.Join(segments, style.Separator))
	return err
}

// FormatDuration renders a duration at the coarsest useful precision:
// "42s", "3m05s", "1h04m".
func FormatDuration(d time.Duration) string {
	d = max(d, 0).Truncate(time.Second)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
}

// FormatCost renders a USD amount with two decimals.
func FormatCost(usd float64) string {
	return fmt.Sprintf("$%.2f", usd)
}

// FormatTokens renders a token count with an SI suffix, e.g. "12.3k".
func FormatTokens(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return strings.ReplaceAll(humanize.SIWithDigits(float64(n), 1, ""), " ", "")
}
