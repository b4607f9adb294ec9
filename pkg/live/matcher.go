package live

import (
	"regexp"

	"github.com/tvwall/multiview/pkg/link"
	"github.com/tvwall/multiview/pkg/model"
)

// How far around a live flag to look for the video id it belongs to.
const proximityWindow = 4096

// Matcher extracts a candidate video id from a live page body.
type Matcher struct {
	Kind  model.MatcherKind
	Match func(body string) (string, bool)
}

var (
	canonicalLinkRe = regexp.MustCompile(`<link rel="canonical" href="https://www\.youtube\.com/watch\?v=([A-Za-z0-9_-]+)"`)
	jsonVideoIDRe   = regexp.MustCompile(`"videoId":"([A-Za-z0-9_-]+)"`)
	playerParamsRe  = regexp.MustCompile(`(?:\\?"video_id\\?"\s*:\s*\\?"|[?&;]video_id=)([A-Za-z0-9_-]+)`)
	looseVideoIDRe  = regexp.MustCompile(`\\?"(?:videoId|video_id)\\?"\s*:\s*\\?"([A-Za-z0-9_-]+)`)
	liveNowRe       = regexp.MustCompile(`\\?"isLiveNow\\?"\s*:\s*true`)
	liveChunkRe     = regexp.MustCompile(`\\?"liveChunkReadahead\\?"\s*:`)

	channelCanonicalRe = regexp.MustCompile(`<link rel="canonical" href="https://www\.youtube\.com/(?:channel/|@)`)
	channelOgURLRe     = regexp.MustCompile(`<meta property="og:url" content="https://www\.youtube\.com/(?:channel/|@)`)
)

// DefaultMatchers returns the matchers in priority order. The canonical link
// is the most reliable signal, flags scraped from inline player
// configuration are the last resort.
func DefaultMatchers() []Matcher {
	return []Matcher{
		{Kind: model.MatcherCanonicalLink, Match: firstSubmatch(canonicalLinkRe)},
		{Kind: model.MatcherJSONVideoID, Match: firstSubmatch(jsonVideoIDRe)},
		{Kind: model.MatcherPlayerParamsVideoID, Match: firstSubmatch(playerParamsRe)},
		{Kind: model.MatcherLiveNowFlag, Match: nearAnchor(liveNowRe)},
		{Kind: model.MatcherLiveChunkReadahead, Match: nearAnchor(liveChunkRe)},
	}
}

// Match runs matchers in order and returns the first valid video id.
func Match(matchers []Matcher, body string) (string, model.MatcherKind) {
	for _, m := range matchers {
		if id, ok := m.Match(body); ok && link.IsValidVideoID(id) {
			return id, m.Kind
		}
	}

	return "", model.MatcherNone
}

// looksOffline reports whether the body is the channel's regular page,
// which YouTube serves from /live when nothing is streaming.
func looksOffline(body string) bool {
	return channelCanonicalRe.MatchString(body) || channelOgURLRe.MatchString(body)
}

// firstSubmatch returns the first capture that is a well formed id.
// Captures are greedy over the id alphabet, so 10 or 12 character values
// fail validation instead of being truncated.
func firstSubmatch(re *regexp.Regexp) func(string) (string, bool) {
	return func(body string) (string, bool) {
		for _, m := range re.FindAllStringSubmatch(body, -1) {
			if link.IsValidVideoID(m[1]) {
				return m[1], true
			}
		}
		return "", false
	}
}

// nearAnchor finds the video id closest to any occurrence of the anchor.
func nearAnchor(anchor *regexp.Regexp) func(string) (string, bool) {
	return func(body string) (string, bool) {
		for _, loc := range anchor.FindAllStringIndex(body, -1) {
			if id, ok := nearestID(body, loc[0], loc[1]); ok {
				return id, true
			}
		}
		return "", false
	}
}

func nearestID(body string, start, end int) (string, bool) {
	from := start - proximityWindow
	if from < 0 {
		from = 0
	}
	to := end + proximityWindow
	if to > len(body) {
		to = len(body)
	}

	var (
		best     string
		bestDist = -1
	)

	window := body[from:to]
	for _, loc := range looseVideoIDRe.FindAllStringSubmatchIndex(window, -1) {
		id := window[loc[2]:loc[3]]
		if !link.IsValidVideoID(id) {
			continue
		}

		pos := from + loc[0]
		dist := start - pos
		if pos >= end {
			dist = pos - end
		}
		if dist < 0 {
			dist = 0
		}

		if bestDist == -1 || dist < bestDist {
			best, bestDist = id, dist
		}
	}

	return best, bestDist != -1
}
