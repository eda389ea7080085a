// Package styles defines the catalog of rephrase styles and their share hashtags.
package styles

// Style identifies a rephrase style. Values outside the catalog are still valid
// for sharing; they get a synthesized hashtag.
type Style string

// Catalog styles
const (
	Meigen     Style = "meigen"
	Menhera    Style = "menhera"
	Chuunibyou Style = "chuunibyou"
	Keigo      Style = "keigo"
	Kansai     Style = "kansai"
	Poet       Style = "poet"
	Business   Style = "business"
	Gyaru      Style = "gyaru"
)

// Entry describes one catalog style.
type Entry struct {
	ID          Style  `json:"id"`
	Name        string `json:"name"`
	Hashtag     string `json:"hashtag"`
	Description string `json:"description"`
}

var catalog = []Entry{
	{ID: Meigen, Name: "名言風", Hashtag: "#名言風", Description: "深く心に響く名言のような表現"},
	{ID: Menhera, Name: "メンヘラ風", Hashtag: "#メンヘラ風", Description: "感情的で繊細な表現"},
	{ID: Chuunibyou, Name: "厨二病風", Hashtag: "#厨二病風", Description: "大げさで壮大なカッコイイ表現"},
	{ID: Keigo, Name: "敬語", Hashtag: "#敬語風", Description: "丁寧で上品な敬語表現"},
	{ID: Kansai, Name: "関西弁", Hashtag: "#関西弁風", Description: "親しみやすい関西弁"},
	{ID: Poet, Name: "詩人風", Hashtag: "#詩人風", Description: "韻律や比喩を使った詩的な表現"},
	{ID: Business, Name: "ビジネス", Hashtag: "#ビジネス風", Description: "フォーマルなビジネス表現"},
	{ID: Gyaru, Name: "ギャル風", Hashtag: "#ギャル風", Description: "元気で可愛いギャル風の表現"},
}

var byID = func() map[Style]Entry {
	m := make(map[Style]Entry, len(catalog))
	for _, e := range catalog {
		m[e.ID] = e
	}
	return m
}()

// All returns the catalog in display order. The returned slice is a copy.
func All() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Known reports whether style is one of the catalog styles.
func Known(style Style) bool {
	_, ok := byID[style]
	return ok
}

// Lookup returns the catalog entry for style.
func Lookup(style Style) (Entry, bool) {
	e, ok := byID[style]
	return e, ok
}

// Hashtag returns the share hashtag for style. Unknown styles produce "#{style}風".
func Hashtag(style Style) string {
	if e, ok := byID[style]; ok {
		return e.Hashtag
	}
	return "#" + string(style) + "風"
}
