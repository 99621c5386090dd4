package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvingwithbikes/campground-cli/internal/pdfdoc"
)

// testPage builds a page whose words are laid out one line per 10 vertical
// units, so link bands can be positioned against label words precisely.
func testPage(lines []string) *pdfdoc.Page {
	var words []pdfdoc.Word
	for i, line := range lines {
		top := float64(i * 10)
		for _, w := range strings.Fields(line) {
			words = append(words, pdfdoc.Word{Text: w, Top: top})
		}
	}
	return &pdfdoc.Page{
		Number: 17,
		Height: float64(len(lines) * 10),
		Text:   strings.Join(lines, "\n"),
		Words:  words,
	}
}

// lineBand returns a link band covering the given line index.
func lineBand(uri string, lineIdx int) pdfdoc.Link {
	top := float64(lineIdx * 10)
	return pdfdoc.Link{URI: uri, YTop: top - 2, YBottom: top + 2}
}

func twoEntryPage() *pdfdoc.Page {
	page := testPage([]string{
		"Asheville, NC",                     // 0
		"Campground: Lake Powhatan.",        // 1
		"CG Notes: Wooded sites.",           // 2
		"Trail: Bent Creek Trail",           // 3
		"Trail Notes: Gravel.",              // 4
		"Related Blog Post: Biking Bent Creek", // 5
		"Contributor: Jane Chambers",        // 6
		"Contributor's Blog: On the Road",   // 7
		"Brevard, NC",                       // 8
		"Campground: Davidson River.",       // 9
		"Trail: Estatoe Trail",              // 10
		"Trail: Brevard Bike Path",          // 11
		"Trail Notes: Both paved.",          // 12
		"Related Blog Post: Brevard Rides",  // 13
	})
	page.Links = []pdfdoc.Link{
		lineBand("https://www.recreation.gov/camping/lake-powhatan", 1),
		lineBand("https://www.traillink.com/trail/bent-creek", 3),
		lineBand("https://chambersontheroad.com/bent-creek", 5),
		lineBand("https://janesbikeblog.example.com", 7),
		lineBand("https://davidsonriver.example.com", 9),
		lineBand("https://www.traillink.com/trail/estatoe", 10),
		lineBand("https://brevardnc.gov/bike-path", 11),
		lineBand("https://chambersontheroad.com/brevard", 13),
	}
	return page
}

func TestEntry_FirstEntryFullAttribution(t *testing.T) {
	t.Parallel()

	e, err := Entry(twoEntryPage(), 0)
	require.NoError(t, err)

	assert.Equal(t, "Asheville", e.City)
	require.NotNil(t, e.Campground)
	assert.Equal(t, "Lake Powhatan", e.Campground.Name)
	assert.Equal(t, "https://www.recreation.gov/camping/lake-powhatan", e.Campground.Link)

	require.NotNil(t, e.Trail)
	assert.Equal(t, "https://www.traillink.com/trail/bent-creek", e.Trail.Link)

	assert.Equal(t, "https://chambersontheroad.com/bent-creek", e.BlogPostLink)
	assert.Equal(t, "https://janesbikeblog.example.com", e.ContributorBlogLink)
}

func TestEntry_SecondEntryOffsetsTrailAnchors(t *testing.T) {
	t.Parallel()

	e, err := Entry(twoEntryPage(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Brevard", e.City)
	require.Len(t, e.Trails, 2)
	// The first entry already used one "Trail:" anchor, so this entry's
	// trails anchor on occurrences 1 and 2.
	assert.Equal(t, "https://www.traillink.com/trail/estatoe", e.Trails[0].Link)
	assert.Equal(t, "https://brevardnc.gov/bike-path", e.Trails[1].Link)
	require.NotNil(t, e.Trail)
	assert.Equal(t, e.Trails[0].Link, e.Trail.Link)

	// Second "Related" anchor picks the second blog link.
	assert.Equal(t, "https://chambersontheroad.com/brevard", e.BlogPostLink)
}

func TestEntry_CampgroundLinkNeverTrailLink(t *testing.T) {
	t.Parallel()

	// The band over the campground label resolves to a traillink.com URI;
	// it must be rejected regardless of vertical proximity.
	page := testPage([]string{
		"Asheville, NC",
		"Campground: Lake Powhatan.",
		"CG Notes: Wooded sites.",
	})
	page.Links = []pdfdoc.Link{
		lineBand("https://www.traillink.com/trail/bent-creek", 1),
	}

	e, err := Entry(page, 0)
	require.NoError(t, err)
	require.NotNil(t, e.Campground)
	assert.Empty(t, e.Campground.Link)
}

func TestEntry_IndexOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := Entry(twoEntryPage(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestEntry_EmptyPage(t *testing.T) {
	t.Parallel()

	page := &pdfdoc.Page{Number: 3, Text: "Introduction\nNo entries here"}
	_, err := Entry(page, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entries")
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	blocks := SegmentPage(twoEntryPage().Text)
	summaries := Summarize(blocks)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Asheville, NC", summaries[0].Heading)
	assert.Equal(t, "Lake Powhatan", summaries[0].Campground)
	assert.Equal(t, "Brevard, NC", summaries[1].Heading)
	assert.Equal(t, "Davidson River", summaries[1].Campground)
}
