// Package live decides whether a YouTube channel is streaming right now by
// scraping its /live redirect page.
package live

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/tvwall/multiview/pkg/link"
	"github.com/tvwall/multiview/pkg/model"
)

type Config struct {
	// BaseURL is the YouTube origin, overridable for tests and mirrors
	BaseURL string `toml:"base_url"`
	// UserAgent is sent with every request, YouTube serves a stripped page
	// to clients that do not look like a desktop browser
	UserAgent string `toml:"user_agent"`
	// Timeout bounds a single live page read
	Timeout model.Duration `toml:"timeout"`
	// MaxBodySize is the number of bytes scanned at most
	MaxBodySize int64 `toml:"max_body_size"`
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = model.DefaultYouTubeURL
	}
	if c.UserAgent == "" {
		c.UserAgent = model.DefaultUserAgent
	}
	if c.Timeout.Duration <= 0 {
		c.Timeout.Duration = model.DefaultCheckTimeout
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = model.DefaultMaxBodySize
	}
}

// Report is a resolution together with the diagnostics that led to it.
type Report struct {
	ChannelID    string               `json:"channel_id"`
	FetchURL     string               `json:"fetch_url"`
	StatusCode   int                  `json:"status,omitempty"`
	ResponseSize int                  `json:"response_size"`
	Outcome      model.Outcome        `json:"outcome"`
	Resolution   model.LiveResolution `json:"resolution"`
	VideoID      string               `json:"video_id,omitempty"`
	Error        string               `json:"error,omitempty"`
	CheckedAt    time.Time            `json:"checked_at"`
}

type Resolver struct {
	cfg      Config
	client   *http.Client
	matchers []Matcher
}

func New(cfg Config) *Resolver {
	cfg.applyDefaults()

	return &Resolver{
		cfg:      cfg,
		client:   &http.Client{},
		matchers: DefaultMatchers(),
	}
}

// ResolveLive returns the watch URL of the stream the channel is running
// right now, or an absent resolution. Transport failures and pages without
// a recognizable stream are both reported as not live. An error is only
// returned for bad input, caller cancellation or a broken response stream.
func (r *Resolver) ResolveLive(ctx context.Context, channelID string) (model.LiveResolution, error) {
	report, err := r.Check(ctx, channelID)
	if err != nil {
		return model.NotLive(), err
	}

	return report.Resolution, nil
}

// Check performs one live check and returns diagnostics alongside the result.
func (r *Resolver) Check(ctx context.Context, channelID string) (*Report, error) {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return nil, model.ErrInvalidChannelID
	}

	report := &Report{
		ChannelID:  channelID,
		FetchURL:   link.LivePageURL(r.cfg.BaseURL, channelID),
		Resolution: model.NotLive(),
		CheckedAt:  time.Now().UTC(),
	}

	logger := log.WithFields(log.Fields{
		"channel_id": channelID,
		"url":        report.FetchURL,
	})

	fetchCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout.Duration)
	defer cancel()

	fetched, err := r.fetch(fetchCtx, report.FetchURL)
	if fetched != nil {
		report.StatusCode = fetched.StatusCode
	}

	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrapf(ctx.Err(), "live check of %q canceled", channelID)
		}

		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			logger.WithError(err).Error("live check failed")
			return nil, err
		}

		report.Outcome = model.OutcomeTransportError
		report.Error = err.Error()
		logger.WithError(err).Warn("live page unavailable, reporting channel as not live")
		return report, nil
	}

	report.ResponseSize = len(fetched.Body)
	body := string(fetched.Body)

	if strings.TrimSpace(body) == "" {
		report.Outcome = model.OutcomeParseMiss
		logger.Warn("live page body is empty")
		return report, nil
	}

	videoID, kind := Match(r.matchers, body)
	switch {
	case kind != model.MatcherNone:
		report.Outcome = model.OutcomeLive
		report.VideoID = videoID
		report.Resolution = model.LiveAt(videoID, kind)
	case looksOffline(body):
		report.Outcome = model.OutcomeOffline
	default:
		report.Outcome = model.OutcomeParseMiss
	}

	logger.WithFields(log.Fields{
		"outcome":  report.Outcome,
		"matcher":  kind,
		"video_id": videoID,
		"size":     report.ResponseSize,
	}).Debug("live check finished")

	return report, nil
}
