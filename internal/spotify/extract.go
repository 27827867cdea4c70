package spotifyPorter

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const nextDataID = "__NEXT_DATA__"

// ExtractNextData returns the text of the <script id="__NEXT_DATA__"> element.
// A page without it yields an empty string; decoding reports the failure.
func ExtractNextData(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return doc.Find("script#" + nextDataID).First().Text()
}
