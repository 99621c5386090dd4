package pdfdoc

import (
	"sort"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
)

const (
	// rowTolerance groups text fragments onto one line when their baselines
	// differ by no more than this.
	rowTolerance = 2.0

	// wordGap is the horizontal gap that separates two fragments into
	// distinct words when no explicit space character is present.
	wordGap = 3.0
)

type textRow struct {
	baseline float64 // bottom-up PDF baseline
	top      float64 // top-down offset of the line
	frags    []lpdf.Text
}

// buildText converts a page's raw text fragments into plain text (one line
// per visual row, top to bottom) and a flat list of positioned words.
func buildText(frags []lpdf.Text, pageHeight float64) (string, []Word) {
	rows := assembleRows(frags, pageHeight)

	var lines []string
	var words []Word
	for _, row := range rows {
		line := rowString(row.frags)
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		for _, w := range strings.Fields(line) {
			words = append(words, Word{Text: w, Top: row.top})
		}
	}

	return strings.Join(lines, "\n"), words
}

// assembleRows sorts fragments into visual rows, top of page first, left to
// right within a row.
func assembleRows(frags []lpdf.Text, pageHeight float64) []textRow {
	sorted := make([]lpdf.Text, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y // higher PDF y = closer to the top
		}
		return sorted[i].X < sorted[j].X
	})

	var rows []textRow
	for _, frag := range sorted {
		if frag.S == "" {
			continue
		}
		if len(rows) > 0 && abs(rows[len(rows)-1].baseline-frag.Y) <= rowTolerance {
			rows[len(rows)-1].frags = append(rows[len(rows)-1].frags, frag)
			continue
		}
		rows = append(rows, textRow{
			baseline: frag.Y,
			top:      fragTop(frag, pageHeight),
			frags:    []lpdf.Text{frag},
		})
	}

	for i := range rows {
		sort.SliceStable(rows[i].frags, func(a, b int) bool {
			return rows[i].frags[a].X < rows[i].frags[b].X
		})
	}

	return rows
}

// fragTop converts a fragment's baseline to the glyph's top-down offset.
// The baseline sits roughly 80% of the font height below the glyph top.
func fragTop(frag lpdf.Text, pageHeight float64) float64 {
	return pageHeight - (frag.Y + frag.FontSize*0.8)
}

// rowString joins a row's fragments, inserting a space wherever the
// horizontal gap between fragments indicates a word boundary.
func rowString(frags []lpdf.Text) string {
	var b strings.Builder
	var lastEnd float64
	for i, frag := range frags {
		if i > 0 && frag.X-lastEnd > wordGap {
			b.WriteByte(' ')
		}
		b.WriteString(frag.S)
		lastEnd = frag.X + frag.W
	}
	return b.String()
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
