package spotifyPorter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const nextData = `{"props":{"pageProps":{"state":{"data":{"entity":{"type":"playlist","name":"X","uri":"u","id":"1","trackList":[{"uri":"t1","uid":"u1","title":"Song A","subtitle":"Artist A"}]}}}}}}`

func embedPage(script string) string {
	return fmt.Sprintf(`<!DOCTYPE html><html><head><title>embed</title></head><body><div id="root"></div><script id="__NEXT_DATA__" type="application/json">%s</script></body></html>`, script)
}

func TestFetchText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("User-Agent = %q, want test-agent", got)
		}
		switch r.URL.Path {
		case "/ok":
			fmt.Fprint(w, "hello")
		case "/gone":
			w.WriteHeader(http.StatusGone)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	p := New(server.URL, "test-agent", 0, nil)

	t.Run("success", func(t *testing.T) {
		body, err := p.FetchText(context.Background(), server.URL+"/ok")
		if err != nil {
			t.Fatalf("FetchText() error = %v", err)
		}
		if body != "hello" {
			t.Errorf("body = %q, want hello", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := p.FetchText(context.Background(), server.URL+"/missing")
		var ferr *FetchError
		if !errors.As(err, &ferr) {
			t.Fatalf("error = %v, want *FetchError", err)
		}
		if ferr.StatusCode != http.StatusNotFound {
			t.Errorf("StatusCode = %d, want 404", ferr.StatusCode)
		}
		if err.Error() != "Not Found" {
			t.Errorf("Error() = %q, want Not Found", err.Error())
		}
	})

	t.Run("gone", func(t *testing.T) {
		_, err := p.FetchText(context.Background(), server.URL+"/gone")
		if err == nil || err.Error() != "Gone" {
			t.Errorf("error = %v, want Gone", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.FetchText(ctx, server.URL+"/ok")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestFetchPlaylist(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/embed/playlist/good":
			fmt.Fprint(w, embedPage(nextData))
		case "/embed/playlist/noscript":
			fmt.Fprint(w, "<html><body>nothing</body></html>")
		case "/embed/playlist/shape":
			fmt.Fprint(w, embedPage(`{"props":{}}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	p := New(server.URL, "", 0, nil)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		pl, err := p.FetchPlaylist(ctx, "good")
		if err != nil {
			t.Fatalf("FetchPlaylist() error = %v", err)
		}
		if pl.Name != "X" || len(pl.TrackList) != 1 || pl.TrackList[0].Title != "Song A" {
			t.Errorf("unexpected playlist: %+v", pl)
		}
	})

	t.Run("no script", func(t *testing.T) {
		_, err := p.FetchPlaylist(ctx, "noscript")
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("error = %v, want *ParseError", err)
		}
	})

	t.Run("wrong shape", func(t *testing.T) {
		_, err := p.FetchPlaylist(ctx, "shape")
		var merr *MissingDataError
		if !errors.As(err, &merr) {
			t.Fatalf("error = %v, want *MissingDataError", err)
		}
		if merr.EmbedURL != server.URL+"/embed/playlist/shape" {
			t.Errorf("EmbedURL = %q", merr.EmbedURL)
		}
	})

	t.Run("server error", func(t *testing.T) {
		_, err := p.FetchPlaylist(ctx, "boom")
		if err == nil || err.Error() != "Internal Server Error" {
			t.Errorf("error = %v, want Internal Server Error", err)
		}
	})

	for _, path := range paths {
		if !strings.HasPrefix(path, "/embed/playlist/") {
			t.Errorf("unexpected request path %s", path)
		}
	}
}
