// Package extract turns guidebook pages into structured campground entries:
// segmentation into entry blocks, labeled-field parsing, and positional
// hyperlink attribution.
package extract

import (
	"regexp"
	"strings"
)

// headingPattern matches the "City, ST" line that starts an entry, with an
// optional single-letter hookup code in parentheses.
var headingPattern = regexp.MustCompile(`^([A-Z][a-zA-Z\s.']+),\s+([A-Z]{2})(?:\s+\(([A-Z])\))?$`)

// siteMarker is the footer attribution string printed on every page.
const siteMarker = "RVingwithBikes.Com"

// Block is one entry's multi-line text block, starting at its heading line.
type Block struct {
	StartLine int
	Text      string
}

// SegmentPage splits page text into entry blocks, one per heading line, in
// the order headings appear. Footer lines (site attribution, "Page N") are
// dropped from every block. A page without heading lines yields no blocks;
// that is "nothing to extract", not an error.
func SegmentPage(text string) []Block {
	lines := strings.Split(text, "\n")

	var blocks []Block
	var current []string
	start := -1

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, Block{StartLine: start, Text: strings.Join(current, "\n")})
		}
	}

	for i, line := range lines {
		if headingPattern.MatchString(strings.TrimSpace(line)) {
			flush()
			current = []string{line}
			start = i
			continue
		}
		if start < 0 {
			// Preamble before the first heading belongs to no entry.
			continue
		}
		if isFooterLine(line) {
			continue
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

func isFooterLine(line string) bool {
	return strings.Contains(line, siteMarker) ||
		strings.HasPrefix(strings.TrimSpace(line), "Page ")
}

// parseHeadingLine extracts city, state, and the optional hookup-code letter
// from a heading line.
func parseHeadingLine(line string) (city, state, code string, ok bool) {
	m := headingPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", "", "", false
	}
	return strings.TrimSpace(m[1]), m[2], m[3], true
}
