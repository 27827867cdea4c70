package porter

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/whatyoubendoing/spotify2csv/internal/adapters"
	"github.com/whatyoubendoing/spotify2csv/internal/playlist"
	"github.com/whatyoubendoing/spotify2csv/internal/utils"
)

// ErrInvalidURL is returned when no playlist id can be found in the input
var ErrInvalidURL = errors.New("invalid playlist url")

// Porter exports playlists as CSV
// using an adapter to interact with a specific music platform
type Porter struct {
	adapter adapters.ApiAdapter
}

// NewPorter creates a new playlist service using the specified adapter
func NewPorter(adapter adapters.ApiAdapter) *Porter {
	return &Porter{
		adapter: adapter,
	}
}

// NewPorterWithOptions creates a new Porter instance for the specified platform
func NewPorterWithOptions(platform string, opts adapters.Options) (*Porter, error) {
	adapter, err := adapters.NewApiAdapter(platform, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create adapter for platform %s: %v", platform, err)
	}
	return NewPorter(adapter), nil
}

// ResolvePlaylistID extracts the playlist id from url, or returns ErrInvalidURL
func (s *Porter) ResolvePlaylistID(url string) (string, error) {
	id, ok := s.adapter.ResolvePlaylistID(url)
	if !ok {
		return "", ErrInvalidURL
	}
	return id, nil
}

// ExportPlaylistToCSV fetches a playlist and renders it as CSV text
func (s *Porter) ExportPlaylistToCSV(ctx context.Context, playlistID string) (string, error) {
	pl, err := s.adapter.GetPlaylist(ctx, playlistID)
	if err != nil {
		return "", err
	}
	return FormatCSV(pl), nil
}

var csvHeader = utils.StructToCsvHeader(reflect.TypeOf(playlist.Row{}))

// FormatCSV renders the header "Name,Artist" and one quoted row per track,
// in track list order, joined by "\n" without a trailing newline
func FormatCSV(pl playlist.Playlist) string {
	// Row is a flat struct of strings, so formatting cannot fail
	out, _ := utils.FormatCsv(csvHeader, pl.Rows())
	return out
}
