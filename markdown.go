package cratedoc

import "strings"

// CleanMarkdown compacts converted Markdown for terminal display by
// collapsing runs of three or more newlines down to two. Converters tend to
// leave large vertical gaps where page chrome was removed.
func CleanMarkdown(markdown string) string {
	var b strings.Builder
	b.Grow(len(markdown))

	newlines := 0
	for _, r := range markdown {
		if r == '\n' {
			newlines++
			if newlines <= 2 {
				b.WriteRune(r)
			}
			continue
		}
		newlines = 0
		b.WriteRune(r)
	}

	return b.String()
}
