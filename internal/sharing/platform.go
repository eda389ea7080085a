// Package sharing builds shareable post content from rephrased text and maps it
// to platform deep links.
package sharing

import "strings"

// Platform is a share target.
type Platform string

// Supported share targets
const (
	Twitter   Platform = "twitter"
	Line      Platform = "line"
	Instagram Platform = "instagram"
	TikTok    Platform = "tiktok"
	General   Platform = "general"
)

var platforms = []Platform{Twitter, Line, Instagram, TikTok, General}

// Platforms returns every supported share target.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// Valid reports whether p is a supported platform.
func (p Platform) Valid() bool {
	for _, known := range platforms {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePlatform normalizes a platform name. An empty name means General.
func ParsePlatform(name string) (Platform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return General, nil
	}
	p := Platform(name)
	if !p.Valid() {
		return "", &PlatformError{Name: name}
	}
	return p, nil
}
