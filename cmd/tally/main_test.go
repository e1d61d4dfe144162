package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tally/internal/adapters/render"
	"go.trai.ch/tally/internal/app"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports/mocks"
	"go.trai.ch/tally/internal/engine/refresh"
	"go.uber.org/mock/gomock"
)

type nopCoordinator struct{}

func (nopCoordinator) MaybeRefreshAll(context.Context) {}

type nopRefresher struct{}

func (nopRefresher) Refresh(context.Context, refresh.Options) []refresh.Result { return nil }

func newProvider(t *testing.T) (ComponentProvider, *mocks.MockTimestampStore, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	store := mocks.NewMockUsageCache(ctrl)
	store.EXPECT().Load(gomock.Any()).DoAndReturn(func(k domain.CacheKind) domain.UsagePayload {
		return domain.UsagePayload{Kind: k}
	}).AnyTimes()
	timestamps := mocks.NewMockTimestampStore(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	application := app.New(
		domain.DefaultConfig(),
		nopCoordinator{},
		nopRefresher{},
		store,
		timestamps,
		mocks.NewMockBranchResolver(ctrl),
		render.New(),
		mocks.NewMockErrorLog(ctrl),
		logger,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: logger}, func() {}, nil
	}
	return provider, timestamps, logger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _, _ := newProvider(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, strings.NewReader(""), stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "tally version")
}

// TestRun_Statusline verifies that a status render exits 0 even with no data.
func TestRun_Statusline(t *testing.T) {
	provider, timestamps, _ := newProvider(t)
	timestamps.EXPECT().Elapsed("s1").Return(time.Duration(0), false).AnyTimes()

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{}, strings.NewReader(`{"session_id":"s1","display_name":"Opus"}`),
		stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "Opus")
}

// TestRun_Hook verifies that hook events exit 0 without output.
func TestRun_Hook(t *testing.T) {
	provider, timestamps, _ := newProvider(t)
	timestamps.EXPECT().RecordPromptSubmitted("s1").Return(errors.New("read-only"))
	timestamps.EXPECT().Sweep(domain.TimestampRetention).Return(0, nil)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"hook"},
		strings.NewReader(`{"session_id":"s1","hook_event_name":"UserPromptSubmit"}`),
		stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stdout.String())
}

// TestRun_InvalidUsage verifies that run returns 1 for unknown commands.
func TestRun_InvalidUsage(t *testing.T) {
	provider, _, logger := newProvider(t)
	logger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"frobnicate"}, strings.NewReader(""),
		new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, strings.NewReader(""), new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}
