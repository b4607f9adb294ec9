package wall

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/tvwall/multiview/pkg/link"
	"github.com/tvwall/multiview/pkg/model"
)

type ActionType string

const (
	ActionToggleChannel  = ActionType("toggle_channel")
	ActionToggleAdded    = ActionType("toggle_added")
	ActionAddChannel     = ActionType("add_channel")
	ActionRemoveAdded    = ActionType("remove_added")
	ActionApplySelection = ActionType("apply_selection")
	ActionRemoveFromGrid = ActionType("remove_from_grid")
	ActionHover          = ActionType("hover")
	ActionToggleLock     = ActionType("toggle_lock")
	ActionSetLanguage    = ActionType("set_language")
)

// Action is a single user intent applied to a wall.
type Action struct {
	Type     ActionType     `json:"type"`
	Category int            `json:"category"`
	Index    int            `json:"index"`
	URL      string         `json:"url"`
	Name     string         `json:"name"`
	Select   bool           `json:"select"`
	Language model.Language `json:"language"`

	// Live carries the result of a live check for toggle_channel.
	// It is filled by Dispatcher and never read from clients.
	Live *model.LiveResolution `json:"-"`
}

// Apply returns a new wall with action applied. The input wall is not modified.
func Apply(state model.Wall, action Action) (model.Wall, error) {
	next := clone(state)

	var err error
	switch action.Type {
	case ActionToggleChannel:
		err = toggleChannel(&next, action)
	case ActionToggleAdded:
		err = toggleAdded(&next, action.Index)
	case ActionAddChannel:
		err = addChannel(&next, action)
	case ActionRemoveAdded:
		err = removeAdded(&next, action.Index)
	case ActionApplySelection:
		err = applySelection(&next)
	case ActionRemoveFromGrid:
		err = removeFromGrid(&next, action.URL)
	case ActionHover:
		hover(&next, action.URL)
	case ActionToggleLock:
		err = toggleLock(&next, action.URL)
	case ActionSetLanguage:
		if !action.Language.Valid() {
			err = errors.Wrapf(model.ErrInvalidAction, "unsupported language %q", action.Language)
		} else {
			next.Language = action.Language
		}
	default:
		err = errors.Wrapf(model.ErrInvalidAction, "unknown action %q", action.Type)
	}

	if err != nil {
		return state, err
	}

	return next, nil
}

// GridColumns returns the number of grid columns for n tiles.
func GridColumns(n int) int {
	switch {
	case n <= 1:
		return 1
	case n <= 4:
		return 2
	case n <= 9:
		return 3
	default:
		return 4
	}
}

func clone(state model.Wall) model.Wall {
	out := state

	out.Categories = make([]model.Category, len(state.Categories))
	for i, category := range state.Categories {
		category.Channels = append([]model.Channel(nil), category.Channels...)
		out.Categories[i] = category
	}

	out.Added = append([]model.Channel(nil), state.Added...)
	out.Watching = append([]model.Channel(nil), state.Watching...)
	return out
}

func catalogChannel(state *model.Wall, category, index int) (*model.Category, *model.Channel, error) {
	if category < 0 || category >= len(state.Categories) {
		return nil, nil, errors.Wrapf(model.ErrInvalidAction, "category %d out of range", category)
	}

	c := &state.Categories[category]
	if index < 0 || index >= len(c.Channels) {
		return nil, nil, errors.Wrapf(model.ErrInvalidAction, "channel %d out of range in %q", index, c.Name)
	}

	return c, &c.Channels[index], nil
}

func toggleChannel(state *model.Wall, action Action) error {
	category, ch, err := catalogChannel(state, action.Category, action.Index)
	if err != nil {
		return err
	}

	if ch.Selected || !category.LiveCheck {
		ch.Selected = !ch.Selected
		return nil
	}

	if action.Live == nil {
		return errors.Wrapf(model.ErrInvalidAction, "%q requires a live check before selection", ch.Name)
	}

	if action.Live.IsLive() && urlInUse(state, action.Live.WatchURL, ch) {
		return errors.Wrapf(model.ErrAlreadyExists, "%q streams %s which is already listed", ch.Name, action.Live.WatchURL)
	}

	ch.LiveChecked = true
	if action.Live.IsLive() {
		ch.URL = action.Live.WatchURL
		ch.IsLive = true
		ch.Selected = true
	} else {
		ch.IsLive = false
		ch.Selected = false
	}

	return nil
}

func toggleAdded(state *model.Wall, index int) error {
	if index < 0 || index >= len(state.Added) {
		return errors.Wrapf(model.ErrInvalidAction, "added channel %d out of range", index)
	}

	state.Added[index].Selected = !state.Added[index].Selected
	return nil
}

func addChannel(state *model.Wall, action Action) error {
	videoID, err := link.ExtractVideoID(action.URL)
	if err != nil {
		return err
	}

	watchURL := model.WatchURL(videoID)
	if urlInUse(state, watchURL, nil) {
		return errors.Wrapf(model.ErrAlreadyExists, "%s is already listed", watchURL)
	}

	name := action.Name
	if name == "" {
		name = addedName(state.Language, len(state.Added)+1)
	}

	state.Added = append(state.Added, model.Channel{
		Name:     name,
		URL:      watchURL,
		Logo:     youtubeLogo,
		Domain:   "youtube.com",
		Selected: action.Select,
	})

	return nil
}

func addedName(lang model.Language, n int) string {
	if lang == model.LanguageEnglish {
		return fmt.Sprintf("Added %d", n)
	}
	return fmt.Sprintf("Eklenen %d", n)
}

// urlInUse reports whether any catalog or added channel other than skip points at url.
// Tiles are keyed by URL, so every listed URL must be unique.
func urlInUse(state *model.Wall, url string, skip *model.Channel) bool {
	for i := range state.Categories {
		for j := range state.Categories[i].Channels {
			ch := &state.Categories[i].Channels[j]
			if ch != skip && ch.URL == url {
				return true
			}
		}
	}

	for i := range state.Added {
		if &state.Added[i] != skip && state.Added[i].URL == url {
			return true
		}
	}

	return false
}

func removeAdded(state *model.Wall, index int) error {
	if index < 0 || index >= len(state.Added) {
		return errors.Wrapf(model.ErrInvalidAction, "added channel %d out of range", index)
	}

	removed := state.Added[index]
	state.Added = append(state.Added[:index], state.Added[index+1:]...)

	if gridIndex(state, removed.URL) >= 0 {
		return removeFromGrid(state, removed.URL)
	}

	return nil
}

func applySelection(state *model.Wall) error {
	var grid []model.Channel
	for _, category := range state.Categories {
		for _, ch := range category.Channels {
			if ch.Selected {
				grid = append(grid, ch)
			}
		}
	}

	for _, ch := range state.Added {
		if ch.Selected {
			grid = append(grid, ch)
		}
	}

	if len(grid) == 0 {
		return errors.Wrap(model.ErrInvalidAction, "nothing selected")
	}

	state.Watching = grid
	state.Started = true
	state.LockedSound = ""
	state.ActiveSound = grid[0].URL
	return nil
}

func gridIndex(state *model.Wall, url string) int {
	for i, ch := range state.Watching {
		if ch.URL == url {
			return i
		}
	}
	return -1
}

func removeFromGrid(state *model.Wall, url string) error {
	index := gridIndex(state, url)
	if index < 0 {
		return errors.Wrapf(model.ErrInvalidAction, "%q is not on the wall", url)
	}

	state.Watching = append(state.Watching[:index], state.Watching[index+1:]...)
	deselect(state, url)

	if state.LockedSound == url {
		state.LockedSound = ""
	}

	if len(state.Watching) == 0 {
		stop(state)
		return nil
	}

	if state.ActiveSound == url {
		state.ActiveSound = state.Watching[0].URL
	}

	return nil
}

func deselect(state *model.Wall, url string) {
	for i := range state.Categories {
		for j := range state.Categories[i].Channels {
			if state.Categories[i].Channels[j].URL == url {
				state.Categories[i].Channels[j].Selected = false
			}
		}
	}

	for i := range state.Added {
		if state.Added[i].URL == url {
			state.Added[i].Selected = false
		}
	}
}

func stop(state *model.Wall) {
	state.Watching = nil
	state.Started = false
	state.ActiveSound = ""
	state.LockedSound = ""

	for i := range state.Categories {
		for j := range state.Categories[i].Channels {
			state.Categories[i].Channels[j].Selected = false
		}
	}

	for i := range state.Added {
		state.Added[i].Selected = false
	}
}

func hover(state *model.Wall, url string) {
	if state.LockedSound != "" || gridIndex(state, url) < 0 {
		return
	}
	state.ActiveSound = url
}

func toggleLock(state *model.Wall, url string) error {
	if gridIndex(state, url) < 0 {
		return errors.Wrapf(model.ErrInvalidAction, "%q is not on the wall", url)
	}

	if state.LockedSound == url {
		state.LockedSound = ""
		return nil
	}

	state.LockedSound = url
	state.ActiveSound = url
	return nil
}
