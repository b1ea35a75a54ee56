package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/pagesift"
	"github.com/fwojciec/pagesift/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Team Page</title></head><body>
		<nav><a href="/">Home</a><a href="/about">About</a></nav>
		<article>
			<h1>Our Team</h1>
			<p>We are a small group of investors focused on growth-stage companies. Our partners have decades of combined experience across venture capital and operations.</p>
			<p>Meet the people behind the fund and learn what drives our investment decisions every day.</p>
		</article>
		<footer>© 2024 Example Ventures</footer>
	</body></html>`

	result, err := trafilatura.NewExtractor().Extract(html)
	require.NoError(t, err)

	assert.Contains(t, result.ContentHTML, "small group of investors")
	assert.NotContains(t, result.ContentHTML, "© 2024 Example Ventures")
}

func TestExtractor_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := trafilatura.NewExtractor().Extract("   ")
	require.Error(t, err)
	assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
}
