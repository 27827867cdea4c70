package adapters

import (
	"context"

	"github.com/zmb3/spotify/v2"
	"go.uber.org/zap"

	"github.com/whatyoubendoing/spotify2csv/internal/playlist"
	spotifyPorter "github.com/whatyoubendoing/spotify2csv/internal/spotify"
)

// SpotifyAdapter reads playlists from the public Spotify embed player
type SpotifyAdapter struct {
	BaseAdapter // Embed the BaseAdapter
	porter      *spotifyPorter.SpotifyPorter
}

// NewSpotifyAdapter creates a new SpotifyAdapter
func NewSpotifyAdapter(opts Options) *SpotifyAdapter {
	base := NewBaseAdapter("Spotify", opts.Logger)
	return &SpotifyAdapter{
		BaseAdapter: base,
		porter:      spotifyPorter.New(opts.BaseURL, opts.UserAgent, opts.Timeout, base.Logger()),
	}
}

// ResolvePlaylistID accepts open.spotify.com playlist and embed URLs
func (a *SpotifyAdapter) ResolvePlaylistID(url string) (string, bool) {
	id, ok := spotifyPorter.ResolvePlaylistID(url)
	return string(id), ok
}

// GetPlaylist fetches and decodes the embed page of playlistID.
// Errors are returned unwrapped so their text reaches the user as is.
func (a *SpotifyAdapter) GetPlaylist(ctx context.Context, playlistID string) (playlist.Playlist, error) {
	a.Logger().Debug("getting playlist", zap.String("id", playlistID))
	return a.porter.FetchPlaylist(ctx, spotify.ID(playlistID))
}
