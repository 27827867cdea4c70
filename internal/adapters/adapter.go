package adapters

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/whatyoubendoing/spotify2csv/internal/playlist"
)

// ApiAdapter defines the interface for reading public playlists
// from a music platform without authentication
type ApiAdapter interface {
	PlatformName() string

	// ResolvePlaylistID extracts a playlist id from a user supplied URL
	ResolvePlaylistID(url string) (string, bool)

	// GetPlaylist fetches a playlist with its tracks in page order
	GetPlaylist(ctx context.Context, playlistID string) (playlist.Playlist, error)
}

// PlatformType represents the supported music platforms
type PlatformType string

const (
	SpotifyPlatform PlatformType = "spotify"
)

// Options configures how adapters reach their platform
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Logger    *zap.Logger
}

// NewApiAdapter is a factory function that creates a new adapter for the specified platform
func NewApiAdapter(platform string, opts Options) (ApiAdapter, error) {
	p := PlatformType(platform)
	switch p {
	case SpotifyPlatform:
		return NewSpotifyAdapter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", platform)
	}
}
