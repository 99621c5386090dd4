package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rvingwithbikes/campground-cli/internal/pdfdoc"
)

func TestLinkForPosition_BandContainment(t *testing.T) {
	t.Parallel()

	links := []pdfdoc.Link{
		{URI: "https://example.com/a", YTop: 100, YBottom: 110},
		{URI: "https://example.com/b", YTop: 200, YBottom: 210},
	}

	uri, ok := linkForPosition(links, 205)
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/b", uri)

	// Slack extends the band by 5 on each side.
	uri, ok = linkForPosition(links, 96)
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/a", uri)

	_, ok = linkForPosition(links, 150)
	assert.False(t, ok)
}

func TestLooksLikeTrailLink(t *testing.T) {
	t.Parallel()

	trailish := []string{
		"https://www.traillink.com/trail/bent-creek",
		"https://example.com/GREENWAY/map",
		"https://city.gov/parks/river-loop",
		"https://state.gov/bikeway",
		"https://example.com/pathway",
		"https://example.com/bicycling/routes",
	}
	for _, uri := range trailish {
		assert.True(t, looksLikeTrailLink(uri), "uri=%s", uri)
	}

	assert.False(t, looksLikeTrailLink("https://www.recreation.gov/camping/lake-powhatan"))
	assert.False(t, looksLikeTrailLink("https://koa.com/campgrounds/asheville"))
}

func TestLabelLink_OrdinalSelectsAnchor(t *testing.T) {
	t.Parallel()

	words := []pdfdoc.Word{
		{Text: "Campground:", Top: 100},
		{Text: "Pine", Top: 100},
		{Text: "Campground:", Top: 400},
	}
	links := []pdfdoc.Link{
		{URI: "https://first.example.com", YTop: 98, YBottom: 108},
		{URI: "https://second.example.com", YTop: 398, YBottom: 408},
	}

	uri, ok := labelLink(words, links, "Campground:", 0)
	assert.True(t, ok)
	assert.Equal(t, "https://first.example.com", uri)

	uri, ok = labelLink(words, links, "Campground:", 1)
	assert.True(t, ok)
	assert.Equal(t, "https://second.example.com", uri)

	_, ok = labelLink(words, links, "Campground:", 2)
	assert.False(t, ok)
}

func TestNearestBlogLink(t *testing.T) {
	t.Parallel()

	links := []pdfdoc.Link{
		{URI: "https://chambersontheroad.com/post-one", YTop: 100},
		{URI: "https://chambersontheroad.com/post-two", YTop: 300},
		{URI: "https://example.com/not-a-blog", YTop: 205},
	}

	uri, ok := nearestBlogLink(links, 210)
	assert.True(t, ok)
	assert.Equal(t, "https://chambersontheroad.com/post-two", uri)

	_, ok = nearestBlogLink([]pdfdoc.Link{{URI: "https://example.com", YTop: 0}}, 0)
	assert.False(t, ok)
}

func TestFirstUnclaimedLink(t *testing.T) {
	t.Parallel()

	links := []pdfdoc.Link{
		{URI: "https://campground.example.com"},
		{URI: "https://chambersontheroad.com/post"},
		{URI: "https://contributor.example.com"},
	}
	claimed := []string{"https://campground.example.com", "", ""}

	uri, ok := firstUnclaimedLink(links, claimed)
	assert.True(t, ok)
	assert.Equal(t, "https://contributor.example.com", uri)

	_, ok = firstUnclaimedLink(links, []string{
		"https://campground.example.com",
		"https://contributor.example.com",
	})
	assert.False(t, ok)
}
