package sharing

import (
	"strings"

	"github.com/jonathan/rephrase-master/internal/entitlement"
	"github.com/jonathan/rephrase-master/internal/styles"
)

// Promotional assets appended to shared content.
const (
	AppTag         = "#RephraseMaster"
	LandingPageURL = "https://rephrase-master.app"
	InstagramPromo = "✨AI文章言い換えアプリで生成✨"
)

const blockSeparator = "\n\n"

// Request is the input to Generate. Text is used verbatim.
type Request struct {
	Text     string       `json:"text" validate:"required"`
	Style    styles.Style `json:"style" validate:"required"`
	Platform Platform     `json:"platform,omitempty"`
}

// Composition is the platform-independent content: the text plus the optional
// hashtag line and link. An empty TagLine or Link means it is not shown.
type Composition struct {
	Text    string
	TagLine string
	Link    string
}

// Compose resolves the effective flags from snap and assembles the parts.
func Compose(text string, style styles.Style, snap entitlement.Snapshot) Composition {
	c := Composition{Text: text}
	if snap.EffectiveTags() {
		c.TagLine = TagLine(style)
	}
	if snap.EffectiveLink() {
		c.Link = LandingPageURL
	}
	return c
}

// TagLine returns "#RephraseMaster {styleHashtag}".
func TagLine(style styles.Style) string {
	return AppTag + " " + styles.Hashtag(style)
}

// String joins the parts with blank lines.
func (c Composition) String() string {
	var b strings.Builder
	b.WriteString(c.Text)
	if c.TagLine != "" {
		b.WriteString(blockSeparator)
		b.WriteString(c.TagLine)
	}
	if c.Link != "" {
		b.WriteString(blockSeparator)
		b.WriteString(c.Link)
	}
	return b.String()
}

// WithText returns a copy of c with its text replaced.
func (c Composition) WithText(text string) Composition {
	c.Text = text
	return c
}

// Generate produces the final share content for req under the given
// entitlement snapshot. It is pure: the same inputs always give the same output.
func Generate(req Request, snap entitlement.Snapshot) string {
	c := Compose(req.Text, req.Style, snap)
	return formatterFor(req.Platform).format(c)
}
