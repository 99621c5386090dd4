package model

// HookupType is the RV utility hookup availability for an entry. It is
// determined by which part of the guidebook the entry came from, not parsed
// from the entry text.
type HookupType string

const (
	HookupFull    HookupType = "full"
	HookupPartial HookupType = "partial"
)

// LinkedName is a name that may carry a hyperlink, such as a campground or
// trail reference from the guidebook.
type LinkedName struct {
	Name string `json:"name"`
	Link string `json:"link,omitempty"`
}

// Entry is one campground's record as described on a guidebook page.
// Every field except city/state is optional; absent fields are omitted from
// the persisted JSON rather than stored as nulls.
type Entry struct {
	City       string     `json:"city,omitempty"`
	State      string     `json:"state,omitempty"`
	HookupType HookupType `json:"hookup_type,omitempty"`

	// HookupCode is the optional parenthetical letter on the heading line.
	// Captured for provenance, not interpreted downstream.
	HookupCode string `json:"hookup_code,omitempty"`

	Campground *LinkedName `json:"campground,omitempty"`
	CGNotes    string      `json:"cg_notes,omitempty"`

	// Trail always holds the first trail when any are present. Trails is
	// populated in addition only when an entry references more than one.
	Trail  *LinkedName  `json:"trail,omitempty"`
	Trails []LinkedName `json:"trails,omitempty"`

	TrailNotes string `json:"trail_notes,omitempty"`
	Directions string `json:"directions,omitempty"`
	Other      string `json:"other,omitempty"`

	BlogPost     string `json:"blog_post,omitempty"`
	BlogPostLink string `json:"blog_post_link,omitempty"`

	Contributor         string `json:"contributor,omitempty"`
	ContributorBlog     string `json:"contributor_blog,omitempty"`
	ContributorBlogLink string `json:"contributor_blog_link,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	PlaceID   string   `json:"placeId,omitempty"`
}

// CampgroundName returns the campground name, or "" when unset.
func (e Entry) CampgroundName() string {
	if e.Campground == nil {
		return ""
	}
	return e.Campground.Name
}

// SameIdentity reports whether two entries describe the same campground.
// Identity is the (city, state, campground name) triple, compared with exact
// case-sensitive equality.
func (e Entry) SameIdentity(other Entry) bool {
	return e.City == other.City &&
		e.State == other.State &&
		e.CampgroundName() == other.CampgroundName()
}

// Coordinates is the outcome of a places lookup: either a located place or an
// error description, never both.
type Coordinates struct {
	PlaceID          string  `json:"placeId,omitempty"`
	DisplayName      string  `json:"displayName,omitempty"`
	FormattedAddress string  `json:"formattedAddress,omitempty"`
	Latitude         float64 `json:"latitude,omitempty"`
	Longitude        float64 `json:"longitude,omitempty"`
	Error            string  `json:"error,omitempty"`
}

// Failed reports whether the lookup produced an error instead of a place.
func (c Coordinates) Failed() bool {
	return c.Error != ""
}
