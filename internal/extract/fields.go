package extract

import (
	"regexp"
	"strings"

	"github.com/rvingwithbikes/campground-cli/internal/model"
)

// Field labels as they appear in entry text.
const (
	labelCampground      = "Campground:"
	labelTrail           = "Trail:"
	labelTrailNotes      = "Trail Notes:"
	labelBlogPost        = "Related Blog Post:"
	labelRelated         = "Related"
	labelContributor     = "Contributor:"
	labelContributorBlog = "Contributor's Blog:"
)

// Free-text fields run until the next recognized label. The boundary
// alternation order below is load-bearing: labels are tried as termination
// points in a fixed priority so free text containing incidental substrings
// is not mis-terminated.
var (
	campgroundRe = regexp.MustCompile(`Campground:\s*(.+?)\.?\s*\n`)
	trailRe      = regexp.MustCompile(`Trail:\s*(.+?)\.?\s*(?:\n|$)`)

	cgNotesRe    = regexp.MustCompile(`(?s)CG Notes:\s*(.+?)(?:\nTrail:|\nTrail Notes:|\nDirections:|\nOther:|\nRelated|\nContributor:|\nRVingwithBikes|$)`)
	trailNotesRe = regexp.MustCompile(`(?s)Trail Notes:\s*(.+?)(?:\nDirections:|\nOther:|\nRelated|\nContributor:|\nRVingwithBikes|$)`)
	directionsRe = regexp.MustCompile(`(?s)Directions:\s*(.+?)(?:\nOther:|\nRelated|\nContributor:|\nRVingwithBikes|$)`)
	otherRe      = regexp.MustCompile(`(?s)Other:\s*(.+?)(?:\nRelated|\nContributor:|\nRVingwithBikes|$)`)
	blogPostRe   = regexp.MustCompile(`(?s)Related Blog Post:\s*(.+?)(?:\nContributor:|\nRVingwithBikes|$)`)

	contributorRe     = regexp.MustCompile(`Contributor:\s*(.+?)(?:\n|$)`)
	contributorBlogRe = regexp.MustCompile(`Contributor's Blog:\s*(.+?)(?:\n|$)`)
)

// parseFields extracts every labeled field from one entry block's text.
// A label absent from the text leaves its field unset; that is a data-shape
// gap, not an error. Links are attached separately by the attributor.
func parseFields(text string) model.Entry {
	var e model.Entry

	for _, line := range strings.Split(text, "\n") {
		if city, state, code, ok := parseHeadingLine(line); ok {
			e.City = city
			e.State = state
			e.HookupCode = code
			break
		}
	}

	if m := campgroundRe.FindStringSubmatch(text); m != nil {
		e.Campground = &model.LinkedName{Name: stripName(m[1])}
	}

	if m := cgNotesRe.FindStringSubmatch(text); m != nil {
		e.CGNotes = stripName(m[1])
	}

	if names := trailNames(text); len(names) > 0 {
		if len(names) == 1 {
			e.Trail = &model.LinkedName{Name: names[0]}
		} else {
			e.Trails = make([]model.LinkedName, len(names))
			for i, name := range names {
				e.Trails[i] = model.LinkedName{Name: name}
			}
			// The single trail field always mirrors the first trail for
			// consumers that predate multi-trail entries.
			e.Trail = &e.Trails[0]
		}
	}

	if m := trailNotesRe.FindStringSubmatch(text); m != nil {
		e.TrailNotes = strings.TrimSpace(m[1])
	}
	if m := directionsRe.FindStringSubmatch(text); m != nil {
		e.Directions = strings.TrimSpace(m[1])
	}
	if m := otherRe.FindStringSubmatch(text); m != nil {
		e.Other = strings.TrimSpace(m[1])
	}
	if m := blogPostRe.FindStringSubmatch(text); m != nil {
		e.BlogPost = strings.TrimSpace(m[1])
	}
	if m := contributorRe.FindStringSubmatch(text); m != nil {
		e.Contributor = strings.TrimSpace(m[1])
	}
	if m := contributorBlogRe.FindStringSubmatch(text); m != nil {
		e.ContributorBlog = strings.TrimSpace(m[1])
	}

	return e
}

// trailSection returns the part of the block where "Trail:" lines live:
// everything before "Trail Notes:", or the whole block when absent.
func trailSection(text string) string {
	if i := strings.Index(text, labelTrailNotes); i >= 0 {
		return text[:i]
	}
	return text
}

// trailNames returns every trail name in the block, in source order.
func trailNames(text string) []string {
	var names []string
	for _, m := range trailRe.FindAllStringSubmatch(trailSection(text), -1) {
		names = append(names, stripName(m[1]))
	}
	return names
}

// stripName trims whitespace and a single sentence-final period, which is
// not semantically part of a name.
func stripName(s string) string {
	return strings.TrimSuffix(strings.TrimSpace(s), ".")
}
