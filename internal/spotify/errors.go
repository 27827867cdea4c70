package spotifyPorter

import "fmt"

// FetchError is returned when the embed page responds with a non-success status.
type FetchError struct {
	StatusCode int
	StatusText string
}

func (e *FetchError) Error() string {
	return e.StatusText
}

// ParseError wraps a JSON syntax failure on the extracted script content.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingDataError is returned when the decoded document has no playlist entity.
// EmbedURL points at the page so it can be checked by hand.
type MissingDataError struct {
	EmbedURL string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf(`Can't find valid <script id="%s"> on page. Please check %s`, nextDataID, e.EmbedURL)
}
