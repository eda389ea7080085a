package sharing

import (
	"strings"
	"unicode/utf8"
)

const (
	// TwitterMaxLength is the post length limit on Twitter/X.
	TwitterMaxLength = 280
	ellipsis         = "..."
	// minTruncatedText is the shortest text kept when truncating; below it the
	// untruncated composition is returned instead.
	minTruncatedText = 10
)

// formatter applies one platform's layout to a composition.
type formatter interface {
	format(c Composition) string
}

func formatterFor(p Platform) formatter {
	switch p {
	case Twitter:
		return twitterFormat{limit: TwitterMaxLength}
	case Instagram:
		return instagramFormat{promo: InstagramPromo}
	default:
		// line, tiktok, general and anything unrecognized
		return passthroughFormat{}
	}
}

type passthroughFormat struct{}

func (passthroughFormat) format(c Composition) string {
	return c.String()
}

// twitterFormat shortens only the user's text so tags and link survive.
type twitterFormat struct {
	limit int
}

func (f twitterFormat) format(c Composition) string {
	content := c.String()
	length := utf8.RuneCountInString(content)
	if length <= f.limit {
		return content
	}

	reduction := length - f.limit + utf8.RuneCountInString(ellipsis)
	available := utf8.RuneCountInString(c.Text) - reduction
	if available <= minTruncatedText {
		// Over-length fallback: tags and link are never dropped to fit.
		return content
	}

	return c.WithText(truncateRunes(c.Text, available) + ellipsis).String()
}

// instagramFormat lays the tags out as a caption footer.
type instagramFormat struct {
	promo string
}

func (f instagramFormat) format(c Composition) string {
	var b strings.Builder
	b.WriteString(c.Text)
	if c.TagLine != "" {
		b.WriteString("\n\n・\n")
		b.WriteString(c.TagLine)
	}
	b.WriteString(blockSeparator)
	b.WriteString(f.promo)
	if c.Link != "" {
		b.WriteString("\n")
		b.WriteString(c.Link)
	}
	return b.String()
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
