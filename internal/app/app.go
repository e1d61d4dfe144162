// Package app implements the application layer for tally.
package app

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/tally/internal/engine/refresh"
	"go.trai.ch/tally/internal/ui/output"
	"go.trai.ch/tally/internal/ui/style"
)

// Coordinator triggers background refreshes of stale caches.
type Coordinator interface {
	MaybeRefreshAll(ctx context.Context)
}

// Refresher fetches caches in the foreground.
type Refresher interface {
	Refresh(ctx context.Context, opts refresh.Options) []refresh.Result
}

// App represents the main application logic.
type App struct {
	cfg         *domain.Config
	coordinator Coordinator
	refresher   Refresher
	cache       ports.UsageCache
	timestamps  ports.TimestampStore
	branches    ports.BranchResolver
	renderer    ports.Renderer
	errs        ports.ErrorLog
	logger      ports.Logger

	now     func() time.Time
	ppid    func() int
	profile func() termenv.Profile
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	coordinator Coordinator,
	refresher Refresher,
	cache ports.UsageCache,
	timestamps ports.TimestampStore,
	branches ports.BranchResolver,
	renderer ports.Renderer,
	errs ports.ErrorLog,
	log ports.Logger,
) *App {
	return &App{
		cfg:         cfg,
		coordinator: coordinator,
		refresher:   refresher,
		cache:       cache,
		timestamps:  timestamps,
		branches:    branches,
		renderer:    renderer,
		errs:        errs,
		logger:      log,
		now:         time.Now,
		ppid:        os.Getppid,
		profile:     output.ColorProfile,
	}
}

// WithClock replaces the wall clock. Used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithParentPID replaces the parent process lookup used as the last-resort
// session identifier. Used for testing.
func (a *App) WithParentPID(ppid func() int) *App {
	a.ppid = ppid
	return a
}

// WithColorProfile fixes the color profile of progress output. Used for testing.
func (a *App) WithColorProfile(profile termenv.Profile) *App {
	a.profile = func() termenv.Profile { return profile }
	return a
}

// Run reads one event from in and handles it as a hook event or a status
// render, depending on its hook_event_name.
func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ev := a.decode(in)
	if ev.IsHook() {
		a.hook(&ev)
		return nil
	}
	return a.statusline(ctx, &ev, out)
}

// Statusline renders one status line for the event read from in.
func (a *App) Statusline(ctx context.Context, in io.Reader, out io.Writer) error {
	ev := a.decode(in)
	return a.statusline(ctx, &ev, out)
}

// Hook processes the hook event read from in.
func (a *App) Hook(_ context.Context, in io.Reader) error {
	ev := a.decode(in)
	a.hook(&ev)
	return nil
}

func (a *App) decode(in io.Reader) domain.Event {
	ev, err := domain.DecodeEvent(in)
	if err != nil {
		a.logger.Debug("ignoring malformed event: " + err.Error())
	}
	return ev
}

func (a *App) statusline(ctx context.Context, ev *domain.Event, out io.Writer) error {
	a.coordinator.MaybeRefreshAll(ctx)

	view := domain.StatusView{
		Model: ev.ModelName(),
		Dir:   ev.Dir(),
	}
	if view.Dir != "" {
		view.Branch = a.branches.Branch(view.Dir)
	}

	sessionID := domain.ResolveSessionID(ev, a.ppid())
	view.Processing, view.HasProcessing = a.timestamps.Elapsed(sessionID)

	blocks := a.cache.Load(domain.KindBlocks)
	view.Block = blocks.Blocks.Summarize(a.now(), a.cfg.SessionWindow)
	daily := a.cache.Load(domain.KindDaily)
	view.Daily = daily.Daily.Summarize()

	return a.renderer.Render(out, view)
}

func (a *App) hook(ev *domain.Event) {
	sessionID := domain.ResolveSessionID(ev, a.ppid())

	switch ev.HookEventName {
	case domain.HookUserPromptSubmit:
		if err := a.timestamps.RecordPromptSubmitted(sessionID); err != nil {
			a.logger.Debug("recording prompt time: " + err.Error())
		}
	case domain.HookSessionEnd:
		if err := a.timestamps.Remove(sessionID); err != nil {
			a.logger.Debug("removing session timestamp: " + err.Error())
		}
	default:
		a.logger.Debug("ignoring hook event " + ev.HookEventName)
	}

	if _, err := a.timestamps.Sweep(domain.TimestampRetention); err != nil {
		a.logger.Debug("sweeping session timestamps: " + err.Error())
	}
	if _, err := a.cache.SweepTemp(domain.TimestampRetention); err != nil {
		a.logger.Debug("sweeping cache scratch files: " + err.Error())
	}
}

// RefreshOptions configuration for the Refresh method.
type RefreshOptions struct {
	Blocks     bool
	Daily      bool
	Quiet      bool
	Leased     bool
	LeaseToken string
}

// Kinds returns the selected cache kinds; none selected means all.
func (o RefreshOptions) Kinds() []domain.CacheKind {
	var kinds []domain.CacheKind
	if o.Blocks {
		kinds = append(kinds, domain.KindBlocks)
	}
	if o.Daily {
		kinds = append(kinds, domain.KindDaily)
	}
	if len(kinds) == 0 {
		return domain.AllKinds()
	}
	return kinds
}

// Refresh fetches the selected caches in the foreground and reports progress
// to w unless Quiet is set. Fetch failures are reported, not returned.
func (a *App) Refresh(ctx context.Context, opts RefreshOptions, w io.Writer) error {
	defer func() {
		if err := a.errs.Close(); err != nil {
			a.logger.Debug("closing error log: " + err.Error())
		}
	}()

	results := a.refresher.Refresh(ctx, refresh.Options{
		Kinds:      opts.Kinds(),
		Leased:     opts.Leased,
		LeaseToken: opts.LeaseToken,
	})

	if opts.Quiet {
		return nil
	}

	out := output.NewWithProfile(w, a.profile)
	for _, res := range results {
		reportResult(out, res)
	}
	return nil
}

func reportResult(out *termenv.Output, res refresh.Result) {
	var icon, text string
	var color lipgloss.Color
	switch {
	case res.Err != nil:
		icon, color, text = style.Cross, style.Red, res.Kind.String()+": "+res.Err.Error()
	case res.Skipped:
		icon, color, text = style.Warning, style.Yellow, res.Kind.String()+": refresh already in progress"
	default:
		icon, color, text = style.Check, style.Green, res.Kind.String()+" refreshed"
	}

	styled := out.String(icon).Foreground(out.Color(string(color))).String()
	_, _ = out.WriteString(styled + " " + text + "\n")
}
