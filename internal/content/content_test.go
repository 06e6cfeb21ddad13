package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skh121/merobazaar-web/internal/content"
)

func TestLoadParsesFrontMatterAndRendersMarkdown(t *testing.T) {
	t.Parallel()

	loader := content.NewLoader()

	page, err := loader.Load("help")
	require.NoError(t, err)
	require.Equal(t, "Help Center", page.Title)
	require.NotEmpty(t, page.Summary)
	require.Equal(t, 2026, page.UpdatedAt.Year())

	body := string(page.Body)
	require.Contains(t, body, "<h2")
	require.Contains(t, body, "<strong>Rs 1,000</strong>")
	require.NotContains(t, body, "---", "front matter must not leak into the body")
}

func TestLoadUnknownSlug(t *testing.T) {
	t.Parallel()

	loader := content.NewLoader()

	_, err := loader.Load("no-such-page")
	require.ErrorIs(t, err, content.ErrPageNotFound)

	_, err = loader.Load("../../etc/passwd")
	require.ErrorIs(t, err, content.ErrPageNotFound)
}

func TestSlugsListsEmbeddedPages(t *testing.T) {
	t.Parallel()

	loader := content.NewLoader()
	slugs := loader.Slugs()
	require.Contains(t, slugs, "help")
	require.Contains(t, slugs, "seller-guide")
	require.Contains(t, slugs, "terms")
	for _, s := range slugs {
		require.False(t, strings.HasSuffix(s, ".md"))
	}
}
