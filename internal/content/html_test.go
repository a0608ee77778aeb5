package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNBSP(t *testing.T) {
	t.Parallel()
	got, err := NormalizeNBSP()([]byte("hello&nbsp;world\xc2\xa0again&NBSP;!"))
	require.NoError(t, err)
	assert.Equal(t, "hello world again !", string(got))
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()
	got, err := SanitizeHTML()([]byte(`<script>alert(1)</script><b onclick="x()">bold</b><a href="https://example.com">l</a>`))
	require.NoError(t, err)
	s := string(got)
	assert.NotContains(t, s, "script")
	assert.NotContains(t, s, "onclick")
	assert.Contains(t, s, "<b>bold</b>")
	assert.Contains(t, s, `href="https://example.com"`)
}

func TestScrubHTML_CollapsesBreaks(t *testing.T) {
	t.Parallel()
	got, err := ScrubHTML()([]byte("a<br><br> <br><br>b<br>c"))
	require.NoError(t, err)
	s := string(got)
	// a + two breaks, b + one break, c
	assert.Equal(t, 3, strings.Count(s, "<br"))
	assert.Contains(t, s, "a")
	assert.Contains(t, s, "c")
}

func TestDescriptionToMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
		absent   []string
	}{
		{
			name:     "codelab preview text",
			input:    "HTML<br><br>description",
			contains: []string{"HTML", "description"},
			absent:   []string{"<br"},
		},
		{
			name:     "formatting and links",
			input:    `An <i>apple</i> is <b>sweet</b>. (From <a href="https://en.wikipedia.org/wiki/Apple">Wikipedia</a>)`,
			contains: []string{"_apple_", "**sweet**", "[Wikipedia](https://en.wikipedia.org/wiki/Apple)"},
		},
		{
			name:     "unsafe markup dropped",
			input:    `<img src=x onerror=alert(1)>safe<script>bad()</script>`,
			contains: []string{"safe"},
			absent:   []string{"img", "bad()", "onerror"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DescriptionToMarkdown(tt.input)
			require.NoError(t, err)
			for _, c := range tt.contains {
				assert.Contains(t, got, c)
			}
			for _, a := range tt.absent {
				assert.NotContains(t, got, a)
			}
		})
	}
}

func TestChain_FailsFast(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	called := false
	chain := Chain(
		TransformerFunc(func([]byte) ([]byte, error) { return nil, boom }),
		TransformerFunc(func(b []byte) ([]byte, error) { called = true; return b, nil }),
	)
	_, err := chain([]byte("x"))
	require.ErrorIs(t, err, boom)
	assert.False(t, called)
}
