package model

import (
	"strings"
)

type Language string

const (
	LanguageEnglish = Language("en")
	LanguageTurkish = Language("tr")
)

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageTurkish
}

// Channel is a single tile candidate: either a fixed stream (URL is a watch
// URL) or a person channel that is checked for a live stream on selection.
type Channel struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	ChannelID   string `json:"channel_id,omitempty"`
	Logo        string `json:"logo"`
	Domain      string `json:"domain"`
	Selected    bool   `json:"selected"`
	IsLive      bool   `json:"is_live"`
	LiveChecked bool   `json:"live_checked"`
}

// Ref returns the channel reference used for resolution.
func (c Channel) Ref() ChannelRef {
	if c.ChannelID != "" {
		return ChannelRef{Identifier: c.ChannelID, IsChannelID: true}
	}

	return ChannelRef{Identifier: c.URL, IsChannelID: !strings.HasPrefix(c.URL, "http")}
}

type Category struct {
	Name string `json:"name"`
	// LiveCheck marks categories whose channels must be resolved to a live
	// stream before they can be selected.
	LiveCheck bool      `json:"live_check"`
	Channels  []Channel `json:"channels"`
}

// Wall is everything a viewer sees: the catalog with selection flags,
// channels added by hand, the grid being watched and sound state.
type Wall struct {
	ViewerID    string     `json:"viewer_id"`
	Language    Language   `json:"language"`
	Categories  []Category `json:"categories"`
	Added       []Channel  `json:"added"`
	Watching    []Channel  `json:"watching"`
	Started     bool       `json:"started"`
	ActiveSound string     `json:"active_sound,omitempty"`
	LockedSound string     `json:"locked_sound,omitempty"`
}
