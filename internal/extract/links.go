package extract

import (
	"math"
	"strings"

	"github.com/rvingwithbikes/campground-cli/internal/pdfdoc"
)

// bandSlack widens a link's vertical band when testing anchor containment.
const bandSlack = 5.0

// blogDomain marks links that point at the companion blog.
const blogDomain = "chambersontheroad"

// trailLinkFragments appear in URIs that point at trails, paths, or similar
// rides. A campground-link candidate containing any of them is rejected:
// label words sit close together, and attribution must not drift onto an
// adjacent trail hyperlink.
var trailLinkFragments = []string{
	"/trail/", "/trails", "traillink.com", "recreationtrails",
	"loop", "greenway", "bikeway", "pathway", "/bicycling",
}

func looksLikeTrailLink(uri string) bool {
	lower := strings.ToLower(uri)
	for _, frag := range trailLinkFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}

// linkForPosition returns the first link whose vertical band
// [yTop-bandSlack, yBottom+bandSlack] contains top.
func linkForPosition(links []pdfdoc.Link, top float64) (string, bool) {
	for _, l := range links {
		if l.YTop-bandSlack <= top && top <= l.YBottom+bandSlack {
			return l.URI, true
		}
	}
	return "", false
}

// wordOccurrences returns page words whose text equals label, in page order.
func wordOccurrences(words []pdfdoc.Word, label string) []pdfdoc.Word {
	var out []pdfdoc.Word
	for _, w := range words {
		if w.Text == label {
			out = append(out, w)
		}
	}
	return out
}

// labelLink anchors on the ordinal-th occurrence of label on the page and
// returns the link whose band contains the anchor's vertical position.
func labelLink(words []pdfdoc.Word, links []pdfdoc.Link, label string, ordinal int) (string, bool) {
	occ := wordOccurrences(words, label)
	if ordinal < 0 || ordinal >= len(occ) {
		return "", false
	}
	return linkForPosition(links, occ[ordinal].Top)
}

// nearestBlogLink returns the blog-domain link whose top edge is closest to
// the anchor position. Blog links are sparse, so nearest-match beats band
// containment here.
func nearestBlogLink(links []pdfdoc.Link, anchorTop float64) (string, bool) {
	best := ""
	bestDist := math.Inf(1)
	for _, l := range links {
		if !strings.Contains(l.URI, blogDomain) {
			continue
		}
		if d := math.Abs(l.YTop - anchorTop); d < bestDist {
			best = l.URI
			bestDist = d
		}
	}
	return best, best != ""
}

// firstUnclaimedLink resolves the contributor-blog link: the first link on
// the page not already attributed elsewhere and not on the blog domain.
// Known limitation: with more than one genuinely unclaimed link on a page
// this picks whichever comes first, with no tie-break.
func firstUnclaimedLink(links []pdfdoc.Link, claimed []string) (string, bool) {
	taken := make(map[string]bool, len(claimed))
	for _, uri := range claimed {
		if uri != "" {
			taken[uri] = true
		}
	}
	for _, l := range links {
		if !taken[l.URI] && !strings.Contains(l.URI, blogDomain) {
			return l.URI, true
		}
	}
	return "", false
}
