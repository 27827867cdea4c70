package spotifyPorter

import (
	"regexp"
	"strings"

	"github.com/zmb3/spotify/v2"
)

// DefaultBaseURL is the host serving both playlist and embed pages
const DefaultBaseURL = "https://open.spotify.com"

var playlistURLPattern = regexp.MustCompile(`https://open\.spotify\.com/(?:embed/)?playlist/([a-zA-Z0-9]+)`)

// ResolvePlaylistID extracts the playlist id from a playlist or embed URL.
// The match is an unanchored search, so anything after the id is ignored.
func ResolvePlaylistID(url string) (spotify.ID, bool) {
	m := playlistURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return spotify.ID(m[1]), true
}

// EmbedURL builds the embed page URL for a playlist on baseURL
func EmbedURL(baseURL string, id spotify.ID) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/embed/playlist/" + string(id)
}
