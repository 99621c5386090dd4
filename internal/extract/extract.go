package extract

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/rvingwithbikes/campground-cli/internal/model"
	"github.com/rvingwithbikes/campground-cli/internal/pdfdoc"
)

// Entry extracts the index-th campground entry from a page. The page's
// other entry blocks participate too: link attribution counts same-label
// occurrences across earlier entries to anchor on the right positioned word.
func Entry(page *pdfdoc.Page, index int) (model.Entry, error) {
	blocks := SegmentPage(page.Text)
	if len(blocks) == 0 {
		return model.Entry{}, eris.Errorf("extract: no entries found on page %d", page.Number)
	}
	if index < 0 || index >= len(blocks) {
		return model.Entry{}, eris.Errorf("extract: entry index %d out of range, page %d has %d entries",
			index, page.Number, len(blocks))
	}

	entry := parseFields(blocks[index].Text)
	attachLinks(&entry, page, blocks, index)

	zap.L().Debug("entry extracted",
		zap.Int("page", page.Number),
		zap.Int("index", index),
		zap.String("city", entry.City),
		zap.String("campground", entry.CampgroundName()),
	)

	return entry, nil
}

// Summary describes one entry block for listing.
type Summary struct {
	Heading    string
	Campground string
}

// Summarize returns the heading line and campground name for each entry
// block on the page, in page order.
func Summarize(blocks []Block) []Summary {
	summaries := make([]Summary, len(blocks))
	for i, b := range blocks {
		heading := b.Text
		if nl := strings.IndexByte(heading, '\n'); nl >= 0 {
			heading = heading[:nl]
		}
		name := parseFields(b.Text).CampgroundName()
		if name == "" {
			name = "Unknown"
		}
		summaries[i] = Summary{Heading: strings.TrimSpace(heading), Campground: name}
	}
	return summaries
}

// attachLinks assigns hyperlinks to the entry's link-bearing fields using
// page-relative positional counting: the anchor for a label is its Nth
// occurrence on the page, where N is the count of same-label occurrences in
// all earlier entries plus the field's position within this entry.
func attachLinks(entry *model.Entry, page *pdfdoc.Page, blocks []Block, index int) {
	if entry.Campground != nil {
		if uri, ok := labelLink(page.Words, page.Links, labelCampground, index); ok && !looksLikeTrailLink(uri) {
			entry.Campground.Link = uri
		}
	}

	if trails := trailTargets(entry); len(trails) > 0 {
		offset := 0
		for i := 0; i < index; i++ {
			offset += len(trailNames(blocks[i].Text))
		}
		for i, trail := range trails {
			if uri, ok := labelLink(page.Words, page.Links, labelTrail, offset+i); ok {
				trail.Link = uri
			}
		}
	}

	if entry.BlogPost != "" {
		ordinal := 0
		for i := 0; i < index; i++ {
			if strings.Contains(blocks[i].Text, labelBlogPost) {
				ordinal++
			}
		}
		if anchors := wordOccurrences(page.Words, labelRelated); ordinal < len(anchors) {
			if uri, ok := nearestBlogLink(page.Links, anchors[ordinal].Top); ok {
				entry.BlogPostLink = uri
			}
		}
	}

	if entry.ContributorBlog != "" {
		claimed := []string{entry.BlogPostLink}
		if entry.Campground != nil {
			claimed = append(claimed, entry.Campground.Link)
		}
		if entry.Trail != nil {
			claimed = append(claimed, entry.Trail.Link)
		}
		if uri, ok := firstUnclaimedLink(page.Links, claimed); ok {
			entry.ContributorBlogLink = uri
		}
	}
}

// trailTargets returns pointers to every trail field that can carry a link.
// When Trails is populated, Trail aliases its first element, so updating the
// slice elements covers both.
func trailTargets(entry *model.Entry) []*model.LinkedName {
	if len(entry.Trails) > 0 {
		targets := make([]*model.LinkedName, len(entry.Trails))
		for i := range entry.Trails {
			targets[i] = &entry.Trails[i]
		}
		return targets
	}
	if entry.Trail != nil {
		return []*model.LinkedName{entry.Trail}
	}
	return nil
}
