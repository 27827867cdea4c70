package playlist

import "github.com/zmb3/spotify/v2"

// Track represents a single entry of an embed page track list
type Track struct {
	URI      spotify.URI `json:"uri"`
	UID      string      `json:"uid"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
}

// Playlist represents the playlist entity decoded from an embed page.
// TrackList keeps the order of the page.
type Playlist struct {
	Type      string      `json:"type"`
	Name      string      `json:"name"`
	URI       spotify.URI `json:"uri"`
	ID        spotify.ID  `json:"id"`
	TrackList []Track     `json:"trackList"`
}

// Row is a single exported CSV line
type Row struct {
	Name   string `csv:"Name"`
	Artist string `csv:"Artist"`
}

// Rows maps the track list to CSV rows, title first and byline second
func (p Playlist) Rows() []Row {
	rows := make([]Row, len(p.TrackList))
	for i, t := range p.TrackList {
		rows[i] = Row{Name: t.Title, Artist: t.Subtitle}
	}
	return rows
}
