package sharing

import (
	"net/url"
	"strings"
)

const (
	twitterIntentURL = "https://twitter.com/intent/tweet"
	lineShareURL     = "https://social-plugins.line.me/lineit/share"
)

// ShareURL returns a deep link that opens the platform's pre-filled share flow.
// An empty string means the platform has no deep link and the caller should
// deliver content another way.
func ShareURL(p Platform, content string) string {
	switch p {
	case Twitter:
		return twitterIntentURL + "?text=" + encodeComponent(content)
	case Line:
		return lineShareURL + "?url=" + encodeComponent(LandingPageURL) + "&text=" + encodeComponent(content)
	default:
		return ""
	}
}

// componentUnescaper restores the characters that URI component encoding leaves
// as-is but url.QueryEscape escapes.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent percent-encodes s for use as a single query value,
// with spaces as %20.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
