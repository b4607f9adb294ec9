package wall

import (
	"fmt"

	"github.com/tvwall/multiview/pkg/model"
)

const youtubeLogo = "https://icons.duckduckgo.com/ip3/youtube.com.ico"

func faviconURL(domain string) string {
	return fmt.Sprintf("https://icons.duckduckgo.com/ip3/%s.ico", domain)
}

func stream(name, videoID, domain string) model.Channel {
	return model.Channel{
		Name:   name,
		URL:    model.WatchURL(videoID),
		Logo:   faviconURL(domain),
		Domain: domain,
	}
}

func person(name, channelID, logo string) model.Channel {
	return model.Channel{
		Name:      name,
		URL:       channelID,
		ChannelID: channelID,
		Logo:      logo,
		Domain:    "youtube.com",
	}
}

// DefaultCatalog returns a fresh copy of the built-in channel list.
func DefaultCatalog() []model.Category {
	return []model.Category{
		{
			Name: "Haber",
			Channels: []model.Channel{
				stream("A Haber", "nmY9i63t6qo", "ahaber.com.tr"),
				stream("Halk TV", "ZSWPj9szKb8", "halktv.com.tr"),
				stream("Sözcü TV", "ztmY_cCtUl0", "szctv.com.tr"),
				stream("NTV", "DbQ4HGgr7Xo", "ntv.com.tr"),
				stream("HaberTürk", "RNVNlJSUFoE", "haberturk.com"),
				stream("TRT Haber", "vdIOVu437fM", "trthaber.com.tr"),
				stream("HaberGlobal", "6BX-NUzBSp8", "haberglobal.com.tr"),
				stream("Tele1", "fNqmmqNNGp8", "tele1.com.tr"),
				stream("TGRT Haber", "2-PxQVVcr6A", "tgrthaber.com"),
				stream("CNN Türk", "VXMR3YQ7W3s", "cnnturk.com"),
				stream("Flash Haber", "QeZEb0HMmMg", "flashhabertv.com.tr"),
			},
		},
		{
			Name:      "Bireysel",
			LiveCheck: true,
			Channels: []model.Channel{
				person("Cüneyt Özdemir", "UCkwHQ7DWv9aqEtvAOSO74dQ", "https://yt3.googleusercontent.com/0TSZT9vsYB0e_xaJrshcWxKvyXoRsb-mxsG0q_aYMVnvXkpvCebGKqj8BxCCKvB9Zpdru6xFVNI=s160-c-k-c0x00ffffff-no-rj"),
				person("Nevşin Mengü", "UCrG27KDq7eW4YoEOYsalU9g", "https://yt3.googleusercontent.com/ExwZQT3MhMC4ev2DfXuVMXHmez4r1RJY2f9W0-JSjrVaMVEXeVk3ON2JEjE_yMyQEbRWhvEytA=s160-c-k-c0x00ffffff-no-rj"),
				person("Fatih Altaylı", "UCdS7OE5qbJQc7AG4SwlTzKg", "https://yt3.googleusercontent.com/G3zBIDAZJWh4tTzYmEug_is4j0lylOcRpAFy9z8dRl6tPJwHtpnnQ5pZ221oXdrd9H6q0UN8Og=s160-c-k-c0x00ffffff-no-rj"),
				person("Abdurrahman Uzun", "UC6VKNvOHFbjj41jiSQ5wfAw", "https://yt3.googleusercontent.com/OayiO_TO1ZQO5ppGjs12B53as7VRXSxuVwbO2Ms-U58gSFUIJlk33unWqQcZbwefULS9Ud_o=s160-c-k-c0x00ffffff-no-rj"),
				person("Memduh Bayraktaroğlu", "UCjBaQrNHgLzwAqjfR0pxNWw", "https://yt3.googleusercontent.com/JqFnCZTTyGZTRdt5zQ4r7woPsdg0EKoyJpkr7XaC48kgWxrEwyxaLNEQ5lw3pQheG2j7l8rb=s160-c-k-c0x00ffffff-no-rj"),
				person("Özlem Gürses", "UCojOP7HHZvM2nZz4Rwnd6-Q", "https://yt3.googleusercontent.com/bedQgukAqCMYyGwITBXkpjnPzRXDzBWLLCPSmg3zWC1FWZFo01ldVh6OvSfZN16x1tBTsgeS=s160-c-k-c0x00ffffff-no-rj"),
			},
		},
	}
}

// LiveCheckIDs lists channel ids of every category that requires live resolution.
func LiveCheckIDs(categories []model.Category) []string {
	var ids []string
	for _, category := range categories {
		if !category.LiveCheck {
			continue
		}
		for _, ch := range category.Channels {
			if ref := ch.Ref(); ref.NeedsResolution() {
				ids = append(ids, ref.Identifier)
			}
		}
	}
	return ids
}

// New creates an empty wall for a viewer.
func New(viewerID string) *model.Wall {
	return &model.Wall{
		ViewerID:   viewerID,
		Language:   model.DefaultLanguage,
		Categories: DefaultCatalog(),
	}
}
