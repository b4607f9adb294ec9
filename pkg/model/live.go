package model

import (
	"fmt"
	"time"
)

const watchURLFormat = "https://www.youtube.com/watch?v=%s"

// MatcherKind names a heuristic used to extract a live video id from a page.
type MatcherKind string

const (
	MatcherNone                = MatcherKind("")
	MatcherCanonicalLink       = MatcherKind("canonical_link")
	MatcherJSONVideoID         = MatcherKind("json_video_id")
	MatcherPlayerParamsVideoID = MatcherKind("player_params_video_id")
	MatcherLiveNowFlag         = MatcherKind("live_now_flag")
	MatcherLiveChunkReadahead  = MatcherKind("live_chunk_readahead")
)

// Outcome describes why a check ended the way it did.
// Everything except OutcomeLive is reported to callers as "not live".
type Outcome string

const (
	OutcomeLive           = Outcome("live")
	OutcomeOffline        = Outcome("offline")
	OutcomeParseMiss      = Outcome("parse_miss")
	OutcomeTransportError = Outcome("transport_error")
)

// LiveResolution is the result of one live check.
// Either both fields are set or neither is.
type LiveResolution struct {
	WatchURL    string      `json:"watch_url,omitempty"`
	ResolvedVia MatcherKind `json:"resolved_via,omitempty"`
}

// NotLive returns the absent resolution.
func NotLive() LiveResolution {
	return LiveResolution{}
}

// LiveAt builds a resolution for the given video id.
func LiveAt(videoID string, via MatcherKind) LiveResolution {
	if videoID == "" || via == MatcherNone {
		return NotLive()
	}

	return LiveResolution{
		WatchURL:    WatchURL(videoID),
		ResolvedVia: via,
	}
}

func (r LiveResolution) IsLive() bool {
	return r.WatchURL != "" && r.ResolvedVia != MatcherNone
}

// WatchURL returns the canonical watch page of a video.
func WatchURL(videoID string) string {
	return fmt.Sprintf(watchURLFormat, videoID)
}

// Status is the last known state of a channel as seen by a periodic check.
type Status struct {
	ChannelID  string         `json:"channel_id"`
	Resolution LiveResolution `json:"resolution"`
	Outcome    Outcome        `json:"outcome"`
	CheckedAt  time.Time      `json:"checked_at"`
}
