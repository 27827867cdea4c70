package spotifyPorter

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/zmb3/spotify/v2"

	"github.com/whatyoubendoing/spotify2csv/internal/playlist"
)

// entityPath is where the embed page keeps the playlist entity
const entityPath = "props.pageProps.state.data.entity"

// DecodePlaylist parses the __NEXT_DATA__ document and returns the playlist entity.
// Syntax errors, including empty input, come back as *ParseError. A document
// without an entity object at entityPath is a *MissingDataError naming embedURL.
func DecodePlaylist(jsonText, embedURL string) (playlist.Playlist, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return playlist.Playlist{}, &ParseError{Err: err}
	}

	entity := gjson.GetBytes(raw, entityPath)
	if !entity.IsObject() {
		return playlist.Playlist{}, &MissingDataError{EmbedURL: embedURL}
	}

	p := playlist.Playlist{
		Type: entity.Get("type").String(),
		Name: entity.Get("name").String(),
		URI:  spotify.URI(entity.Get("uri").String()),
		ID:   spotify.ID(entity.Get("id").String()),
	}
	for _, t := range entity.Get("trackList").Array() {
		p.TrackList = append(p.TrackList, playlist.Track{
			URI:      spotify.URI(t.Get("uri").String()),
			UID:      t.Get("uid").String(),
			Title:    t.Get("title").String(),
			Subtitle: t.Get("subtitle").String(),
		})
	}
	return p, nil
}
