package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tvwall/multiview/pkg/model"
)

func TestIsValidVideoID(t *testing.T) {
	assert.True(t, IsValidVideoID("dQw4w9WgXcQ"))
	assert.True(t, IsValidVideoID("2-PxQVVcr6A"))
	assert.True(t, IsValidVideoID("ztmY_cCtUl0"))

	assert.False(t, IsValidVideoID(""))
	assert.False(t, IsValidVideoID("dQw4w9WgXc"))
	assert.False(t, IsValidVideoID("dQw4w9WgXcQQ"))
	assert.False(t, IsValidVideoID("dQw4w9WgX.Q"))
	assert.False(t, IsValidVideoID("dQw4w9WgX Q"))
	assert.False(t, IsValidVideoID("dQw4w9WgXçQ"))
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url string
		id  string
	}{
		{url: "https://www.youtube.com/watch?v=nmY9i63t6qo", id: "nmY9i63t6qo"},
		{url: "https://www.youtube.com/watch?v=nmY9i63t6qo&t=42s", id: "nmY9i63t6qo"},
		{url: "https://www.youtube.com/watch?feature=share&v=nmY9i63t6qo", id: "nmY9i63t6qo"},
		{url: "https://youtu.be/ZSWPj9szKb8", id: "ZSWPj9szKb8"},
		{url: "https://youtu.be/ZSWPj9szKb8?si=abc", id: "ZSWPj9szKb8"},
		{url: "https://www.youtube.com/embed/DbQ4HGgr7Xo", id: "DbQ4HGgr7Xo"},
		{url: "https://www.youtube.com/live/RNVNlJSUFoE?feature=shared", id: "RNVNlJSUFoE"},
		{url: "www.youtube.com/v/vdIOVu437fM", id: "vdIOVu437fM"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			id, err := ExtractVideoID(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestExtractVideoID_Invalid(t *testing.T) {
	for _, link := range []string{
		"",
		"not a url",
		"https://www.youtube.com/",
		"https://www.youtube.com/watch?v=short",
		"https://www.youtube.com/watch?v=waytoolongid1",
	} {
		_, err := ExtractVideoID(link)
		assert.ErrorIs(t, err, model.ErrInvalidURL, link)
	}
}

func TestParseChannelRef_Channel(t *testing.T) {
	ref, err := ParseChannelRef("UCkwHQ7DWv9aqEtvAOSO74dQ")
	require.NoError(t, err)
	assert.Equal(t, model.ChannelRef{Identifier: "UCkwHQ7DWv9aqEtvAOSO74dQ", IsChannelID: true}, ref)
	assert.True(t, ref.NeedsResolution())

	ref, err = ParseChannelRef("https://www.youtube.com/channel/UCrlakW-ewUT8sOod6Wmzyow/live")
	require.NoError(t, err)
	assert.Equal(t, "UCrlakW-ewUT8sOod6Wmzyow", ref.Identifier)
	assert.True(t, ref.IsChannelID)

	ref, err = ParseChannelRef("youtube.com/channel/UC5XPnUk8Vvv_pWslhwom6Og")
	require.NoError(t, err)
	assert.Equal(t, "UC5XPnUk8Vvv_pWslhwom6Og", ref.Identifier)
}

func TestParseChannelRef_Video(t *testing.T) {
	ref, err := ParseChannelRef("https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", ref.Identifier)
	assert.False(t, ref.IsChannelID)
	assert.False(t, ref.NeedsResolution())
}

func TestParseChannelRef_Invalid(t *testing.T) {
	_, err := ParseChannelRef("  ")
	assert.ErrorIs(t, err, model.ErrInvalidChannelID)

	_, err = ParseChannelRef("UC bad id")
	assert.ErrorIs(t, err, model.ErrInvalidChannelID)

	_, err = ParseChannelRef("https://vimeo.com/123456")
	assert.ErrorIs(t, err, model.ErrInvalidURL)

	_, err = ParseChannelRef("https://www.youtube.com/channel/")
	assert.ErrorIs(t, err, model.ErrInvalidURL)
}

func TestLivePageURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/channel/UC_LIVE_1/live", LivePageURL("https://www.youtube.com", "UC_LIVE_1"))
	assert.Equal(t, "http://127.0.0.1:1234/channel/UC_LIVE_1/live", LivePageURL("http://127.0.0.1:1234/", "UC_LIVE_1"))
	assert.Equal(t, "https://www.youtube.com/channel/a%2Fb/live", LivePageURL("https://www.youtube.com", "a/b"))
}
