// Package monitor periodically re-checks channels that require live
// resolution and keeps the latest result for each of them.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tvwall/multiview/pkg/live"
	"github.com/tvwall/multiview/pkg/model"
)

type Config struct {
	// Schedule is a cron expression, for instance "@every 5m". Empty disables the monitor.
	Schedule    string `toml:"schedule"`
	Concurrency int    `toml:"concurrency"`
}

func (c Config) Enabled() bool {
	return c.Schedule != ""
}

type Checker interface {
	Check(ctx context.Context, channelID string) (*live.Report, error)
}

type Recorder interface {
	Record(outcome model.Outcome, channelID string) error
}

type Monitor struct {
	cfg      Config
	checker  Checker
	recorder Recorder
	ids      []string

	mu       sync.RWMutex
	snapshot map[string]model.Status
	lastRun  time.Time
}

// New creates a monitor for the given channel ids. recorder may be nil.
func New(cfg Config, checker Checker, recorder Recorder, ids []string) *Monitor {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = model.DefaultConcurrency
	}

	return &Monitor{
		cfg:      cfg,
		checker:  checker,
		recorder: recorder,
		ids:      ids,
		snapshot: make(map[string]model.Status, len(ids)),
	}
}

// Start runs an initial pass and then follows the schedule until ctx is done.
// A run that is still in progress when the next one is due is skipped.
func (m *Monitor) Start(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(m.cfg.Schedule, func() {
		if err := m.Run(ctx); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("monitor run failed")
		}
	})
	if err != nil {
		return errors.Wrapf(err, "invalid monitor schedule %q", m.cfg.Schedule)
	}

	defer func() {
		log.Info("shutting down monitor")
		<-c.Stop().Done()
	}()

	log.WithFields(log.Fields{
		"schedule": m.cfg.Schedule,
		"channels": len(m.ids),
	}).Info("starting monitor")

	if err := m.Run(ctx); err != nil && ctx.Err() == nil {
		log.WithError(err).Error("initial monitor run failed")
	}

	c.Start()

	<-ctx.Done()
	return ctx.Err()
}

// Run checks every channel once.
func (m *Monitor) Run(ctx context.Context) error {
	started := time.Now()

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(m.cfg.Concurrency)

	for _, id := range m.ids {
		id := id
		group.Go(func() error {
			return m.check(ctx, id)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	m.mu.Lock()
	m.lastRun = started
	m.mu.Unlock()

	log.WithFields(log.Fields{
		"channels": len(m.ids),
		"elapsed":  time.Since(started).String(),
	}).Debug("monitor run finished")

	return nil
}

func (m *Monitor) check(ctx context.Context, channelID string) error {
	status := model.Status{
		ChannelID:  channelID,
		Resolution: model.NotLive(),
		Outcome:    model.OutcomeTransportError,
		CheckedAt:  time.Now().UTC(),
	}

	report, err := m.checker.Check(ctx, channelID)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.WithError(err).WithField("channel_id", channelID).Warn("live check failed")
	} else {
		status.Resolution = report.Resolution
		status.Outcome = report.Outcome
		status.CheckedAt = report.CheckedAt
	}

	m.mu.Lock()
	m.snapshot[channelID] = status
	m.mu.Unlock()

	if m.recorder != nil {
		if err := m.recorder.Record(status.Outcome, channelID); err != nil {
			log.WithError(err).Warn("failed to record outcome")
		}
	}

	return nil
}

// Snapshot returns a copy of the latest status of every checked channel.
func (m *Monitor) Snapshot() map[string]model.Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]model.Status, len(m.snapshot))
	for id, status := range m.snapshot {
		out[id] = status
	}
	return out
}

func (m *Monitor) Status(channelID string) (model.Status, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status, ok := m.snapshot[channelID]
	return status, ok
}

func (m *Monitor) LastRun() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastRun
}
