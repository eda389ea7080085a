package sharing

import "github.com/jonathan/rephrase-master/internal/entitlement"

// Method is how prepared content reaches the user.
type Method string

// Delivery methods
const (
	MethodOpenURL   Method = "open_url"
	MethodClipboard Method = "clipboard"
)

var platformHints = map[Platform]string{
	Instagram: "Instagramでは画像での投稿が効果的です。テキストをコピーして、お気に入りの画像編集アプリで素敵な画像を作成してください！",
	TikTok:    "TikTokでの投稿用にテキストをコピーします。動画の説明文やコメントに使用してください！",
}

// Delivery is generated content plus the route it should take.
type Delivery struct {
	Platform Platform `json:"platform"`
	Content  string   `json:"content"`
	URL      string   `json:"share_url,omitempty"`
	Method   Method   `json:"method"`
	Hint     string   `json:"hint,omitempty"`
}

// Prepare generates content for req and decides how to deliver it: platforms
// with a deep link are opened, everything else falls back to the clipboard.
func Prepare(req Request, snap entitlement.Snapshot) Delivery {
	if req.Platform == "" {
		req.Platform = General
	}

	content := Generate(req, snap)
	d := Delivery{
		Platform: req.Platform,
		Content:  content,
		URL:      ShareURL(req.Platform, content),
		Method:   MethodClipboard,
		Hint:     platformHints[req.Platform],
	}
	if d.URL != "" {
		d.Method = MethodOpenURL
	}
	return d
}
