package model

// ChannelRef points either at a concrete video (a watch URL) or at a channel
// whose current live stream has to be resolved first.
type ChannelRef struct {
	Identifier  string `json:"identifier"`
	IsChannelID bool   `json:"is_channel_id"`
}

// NeedsResolution reports whether the reference must go through live
// resolution before it can be embedded.
func (r ChannelRef) NeedsResolution() bool {
	return r.IsChannelID && r.Identifier != ""
}
