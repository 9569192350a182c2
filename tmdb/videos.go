package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/trailer"
	"github.com/tidwall/gjson"
)

var _ trailer.Source = (*Client)(nil)

var errMalformedVideos = errors.New("malformed videos response")

// Videos lists the videos TMDB knows for id, in the order it returns them.
func (c *Client) Videos(ctx context.Context, id catalog.ID) ([]trailer.Video, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %q", catalog.ErrInvalidID, id)
	}

	// videos in the configured language come first, English ones are still accepted
	query := url.Values{"include_video_language": {videoLanguages(c.language)}}

	body, err := c.get(ctx, "/"+id.String()+"/videos", query)
	if err != nil {
		return nil, fmt.Errorf("videos %s: %w", id, err)
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("videos %s: %w", id, errMalformedVideos)
	}

	results := gjson.GetBytes(body, "results")
	if !results.IsArray() {
		return nil, fmt.Errorf("videos %s: %w", id, errMalformedVideos)
	}

	var videos []trailer.Video
	results.ForEach(func(_, v gjson.Result) bool {
		videos = append(videos, trailer.Video{
			Key:      v.Get("key").String(),
			Name:     v.Get("name").String(),
			Site:     v.Get("site").String(),
			Type:     v.Get("type").String(),
			Official: v.Get("official").Bool(),
		})
		return true
	})

	return videos, nil
}

func videoLanguages(language string) string {
	lang, _, _ := strings.Cut(language, "-")
	if lang == "" || lang == "en" {
		return "en,null"
	}

	return lang + ",en,null"
}
