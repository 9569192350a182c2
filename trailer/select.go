package trailer

import (
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Video is one entry of an item's video list.
type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

func (v Video) youtube() bool {
	return strings.EqualFold(v.Site, "YouTube") && v.Key != ""
}

// Select picks the video to surface: the first YouTube trailer, otherwise
// the first YouTube video of any type.
func Select(videos []Video) mo.Option[Video] {
	if v, ok := lo.Find(videos, func(v Video) bool {
		return v.youtube() && strings.EqualFold(v.Type, "Trailer")
	}); ok {
		return mo.Some(v)
	}

	if v, ok := lo.Find(videos, Video.youtube); ok {
		return mo.Some(v)
	}

	return mo.None[Video]()
}
