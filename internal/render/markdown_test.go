package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown_HTML(t *testing.T) {
	md := NewMarkdown()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"plain paragraph", "新修订的反垄断法正式实施。", "<p>新修订的反垄断法正式实施。</p>\n"},
		{"emphasis", "**重要**通知", "<p><strong>重要</strong>通知</p>\n"},
		{"strikethrough", "~~旧规~~", "<p><del>旧规</del></p>\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := md.HTML(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkdown_EscapesRawHTML(t *testing.T) {
	got, err := NewMarkdown().HTML("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, got, "<script>")
}
