package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "  本日はありがとうございました。  ", "本日はありがとうございました。"},
		{"double quotes", `"おおきに!"`, "おおきに!"},
		{"kagikakko", "「ありがとうございます」", "ありがとうございます"},
		{"nested quotes kept", "「彼は「はい」と言った」", "「彼は「はい」と言った」"},
		{"code fence", "```\nマジ卍\n```", "マジ卍"},
		{"code fence with language", "```text\nマジ卍\n```", "マジ卍"},
		{"lone quote", `"`, `"`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}
