package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashtag(t *testing.T) {
	tests := []struct {
		name     string
		style    Style
		expected string
	}{
		{"meigen", Meigen, "#名言風"},
		{"menhera", Menhera, "#メンヘラ風"},
		{"chuunibyou", Chuunibyou, "#厨二病風"},
		{"keigo", Keigo, "#敬語風"},
		{"kansai", Kansai, "#関西弁風"},
		{"poet", Poet, "#詩人風"},
		{"business", Business, "#ビジネス風"},
		{"gyaru", Gyaru, "#ギャル風"},
		{"unknown style is synthesized", "cowboy", "#cowboy風"},
		{"empty style", "", "#風"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Hashtag(tt.style))
		})
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(Keigo))
	assert.False(t, Known("cowboy"))
	assert.False(t, Known("Keigo"))
}

func TestAll_OrderAndCopy(t *testing.T) {
	all := All()
	require.Len(t, all, 8)
	assert.Equal(t, Meigen, all[0].ID)
	assert.Equal(t, Gyaru, all[7].ID)

	all[0].Hashtag = "mutated"
	assert.Equal(t, "#名言風", Hashtag(Meigen))
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(Kansai)
	require.True(t, ok)
	assert.Equal(t, "#関西弁風", e.Hashtag)

	_, ok = Lookup("cowboy")
	assert.False(t, ok)
}
