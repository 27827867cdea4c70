// Package spotifyPorter reads public playlists from the Spotify embed player.
//
// The embed page (https://open.spotify.com/embed/playlist/<id>) needs no
// credentials. Its HTML carries the playlist as JSON inside
// <script id="__NEXT_DATA__">, which is what this package decodes.
package spotifyPorter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zmb3/spotify/v2"
	"go.uber.org/zap"

	"github.com/whatyoubendoing/spotify2csv/internal/playlist"
)

// SpotifyPorter fetches embed pages from BaseURL
type SpotifyPorter struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// New creates a SpotifyPorter. A zero timeout leaves the client without one.
func New(baseURL, userAgent string, timeout time.Duration, logger *zap.Logger) *SpotifyPorter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpotifyPorter{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
	}
}

// FetchText performs a GET on url and returns the body.
// Any status outside 2xx is a *FetchError.
func (p *SpotifyPorter) FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if p.UserAgent != "" {
		req.Header.Set("User-Agent", p.UserAgent)
	}

	p.Logger.Debug("fetching page", zap.String("url", url))
	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.Logger.Debug("unexpected status", zap.String("url", url), zap.Int("status", resp.StatusCode))
		return "", &FetchError{StatusCode: resp.StatusCode, StatusText: statusText(resp)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	p.Logger.Debug("page fetched", zap.Int("bytes", len(body)))
	return string(body), nil
}

// FetchPlaylist loads the embed page for id and decodes its playlist entity
func (p *SpotifyPorter) FetchPlaylist(ctx context.Context, id spotify.ID) (playlist.Playlist, error) {
	embedURL := EmbedURL(p.BaseURL, id)

	html, err := p.FetchText(ctx, embedURL)
	if err != nil {
		return playlist.Playlist{}, err
	}

	script := ExtractNextData(html)
	p.Logger.Debug("extracted next data", zap.Int("bytes", len(script)))

	pl, err := DecodePlaylist(script, embedURL)
	if err != nil {
		return playlist.Playlist{}, err
	}
	p.Logger.Debug("decoded playlist", zap.String("name", pl.Name), zap.Int("tracks", len(pl.TrackList)))
	return pl, nil
}

// statusText strips the numeric code from resp.Status ("404 Not Found" -> "Not Found")
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
