package constant

// Remote endpoints used by the catalog client and the trailer links.
const (
	TMDBBaseURL   = "https://api.themoviedb.org/3"
	ImageCDNURL   = "https://image.tmdb.org/t/p/w500"
	YouTubeWatch  = "https://www.youtube.com/watch?v="
	YouTubeEmbed  = "https://www.youtube.com/embed/"
	ReleasesURL   = "https://api.github.com/repos/marquee-cli/marquee/releases/latest"
	ReleaseTagURL = "https://github.com/marquee-cli/marquee/releases/tag/v"
)
