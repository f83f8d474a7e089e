package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeCP1252(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     string
		wantGaps []Gap
	}{
		{"ascii", "Plain text 123", "Plain text 123", nil},
		{"latin-1", "café", "caf\xe9", nil},
		{"bullet", "•", "\x95", nil},
		{"euro", "€5", "\x805", nil},
		{"folded", "ǹ", "n", []Gap{{Rune: 'ǹ', Replacement: "n"}}},
		{"unfoldable", "Ł", "?", []Gap{{Rune: 'Ł', Replacement: "?"}}},
		{"cjk", "日本", "??", []Gap{{Rune: '日', Replacement: "?"}, {Rune: '本', Replacement: "?"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gaps := encodeCP1252(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantGaps, gaps)
		})
	}
}

func TestFoldRune(t *testing.T) {
	folded, ok := foldRune('ﬁ')
	assert.True(t, ok)
	assert.Equal(t, "fi", folded)

	_, ok = foldRune('Ł')
	assert.False(t, ok)

	_, ok = foldRune('a')
	assert.False(t, ok, "representable runes fold to themselves")
}
