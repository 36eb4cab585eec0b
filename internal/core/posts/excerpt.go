package posts

import (
	"strings"

	"github.com/rivo/uniseg"
)

// MaxExcerptLength is the excerpt size in user-perceived characters
const MaxExcerptLength = 500

// DeriveExcerpt returns excerpt if it has any non-space text, otherwise the
// first MaxExcerptLength characters of content. Characters are grapheme
// clusters, so a truncated excerpt never ends in half an emoji.
func DeriveExcerpt(content, excerpt string) string {
	if strings.TrimSpace(excerpt) != "" {
		return excerpt
	}
	return truncateGraphemes(content, MaxExcerptLength)
}

func truncateGraphemes(s string, limit int) string {
	if len(s) <= limit {
		// Fewer bytes than the limit means fewer graphemes too
		return s
	}

	state := -1
	rest := s
	end := 0
	for n := 0; n < limit && len(rest) > 0; n++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		end += len(cluster)
	}
	return s[:end]
}
