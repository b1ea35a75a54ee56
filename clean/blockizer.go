package clean

import (
	"strings"

	"github.com/fwojciec/pagesift"
)

// Ensure TextBlockizer implements pagesift.Blockizer at compile time.
var _ pagesift.Blockizer = TextBlockizer{}

// TextBlockizer splits plain text into line blocks. Each line is trimmed
// and internal whitespace runs are collapsed to a single space; lines that
// normalize to empty are dropped. Comparison stays case-sensitive.
type TextBlockizer struct{}

// Blockize converts text content into an ordered block sequence.
// It is deterministic and pure: the same content always yields the same
// blocks, regardless of batch context.
func (TextBlockizer) Blockize(content string) ([]pagesift.Block, error) {
	lines := strings.Split(content, "\n")
	blocks := make([]pagesift.Block, 0, len(lines))
	for _, line := range lines {
		text := strings.Join(strings.Fields(line), " ")
		if text == "" {
			continue
		}
		blocks = append(blocks, pagesift.Block{
			Text:     text,
			Position: len(blocks),
		})
	}
	return blocks, nil
}
