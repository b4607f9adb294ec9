package link

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/tvwall/multiview/pkg/model"
)

const videoIDLength = 11

var (
	videoIDPattern   = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	channelIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// Accepts youtu.be/ID, /v/ID, /u/x/ID, /embed/ID, watch?v=ID and &v=ID.
	videoURLPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|live/|shorts/|watch\?v=|&v=)([^#&?/]*).*`)
)

// IsValidVideoID reports whether id looks like a YouTube video id.
func IsValidVideoID(id string) bool {
	return len(id) == videoIDLength && videoIDPattern.MatchString(id)
}

// ExtractVideoID pulls the video id out of any of the common YouTube URL forms.
func ExtractVideoID(link string) (string, error) {
	match := videoURLPattern.FindStringSubmatch(strings.TrimSpace(link))
	if match == nil || !IsValidVideoID(match[2]) {
		return "", errors.Wrapf(model.ErrInvalidURL, "no video id in %q", link)
	}

	return match[2], nil
}

// ParseChannelRef classifies user input as either a playable video or a
// channel that has to be checked for a live stream.
//
//   - https://www.youtube.com/watch?v=dQw4w9WgXcQ
//   - https://youtu.be/dQw4w9WgXcQ
//   - https://www.youtube.com/channel/UC5XPnUk8Vvv_pWslhwom6Og
//   - UC5XPnUk8Vvv_pWslhwom6Og
func ParseChannelRef(input string) (model.ChannelRef, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return model.ChannelRef{}, model.ErrInvalidChannelID
	}

	if !strings.Contains(input, "/") && !strings.Contains(input, ".") {
		if !channelIDPattern.MatchString(input) {
			return model.ChannelRef{}, errors.Wrapf(model.ErrInvalidChannelID, "malformed channel id %q", input)
		}
		return model.ChannelRef{Identifier: input, IsChannelID: true}, nil
	}

	parsed, err := parseURL(input)
	if err != nil {
		return model.ChannelRef{}, err
	}

	if !strings.HasSuffix(parsed.Hostname(), "youtube.com") && !strings.HasSuffix(parsed.Hostname(), "youtu.be") {
		return model.ChannelRef{}, errors.Wrap(model.ErrInvalidURL, "unsupported URL host")
	}

	// - https://www.youtube.com/channel/UCrlakW-ewUT8sOod6Wmzyow/live
	if strings.HasPrefix(parsed.EscapedPath(), "/channel") {
		parts := strings.Split(parsed.EscapedPath(), "/")
		if len(parts) <= 2 || parts[2] == "" {
			return model.ChannelRef{}, errors.Wrap(model.ErrInvalidURL, "invalid youtube channel link")
		}

		return model.ChannelRef{Identifier: parts[2], IsChannelID: true}, nil
	}

	id, err := ExtractVideoID(parsed.String())
	if err != nil {
		return model.ChannelRef{}, err
	}

	return model.ChannelRef{Identifier: model.WatchURL(id)}, nil
}

// LivePageURL returns the live redirect page of a channel.
func LivePageURL(baseURL, channelID string) string {
	return strings.TrimRight(baseURL, "/") + "/channel/" + url.PathEscape(channelID) + "/live"
}

func parseURL(link string) (*url.URL, error) {
	if !strings.HasPrefix(link, "http") {
		link = "https://" + link
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse url: %s", link)
	}

	return parsed, nil
}
