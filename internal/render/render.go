// Package render formats an extracted entry for operator verification.
package render

import (
	"fmt"
	"strings"

	"github.com/rvingwithbikes/campground-cli/internal/model"
)

const rule = "======================================================================"

// Entry renders the verification display for an extracted entry and, when
// present, its coordinate lookup result. Absent values show as N/A so the
// operator can see exactly which fields the page yielded.
func Entry(e model.Entry, coords *model.Coordinates) string {
	var b strings.Builder

	b.WriteString(rule + "\n")
	b.WriteString("EXTRACTED CAMPGROUND ENTRY\n")
	b.WriteString(rule + "\n\n")

	b.WriteString("LOCATION\n")
	fmt.Fprintf(&b, "   City:        %s\n", orNA(e.City))
	fmt.Fprintf(&b, "   State:       %s\n", orNA(e.State))
	fmt.Fprintf(&b, "   Hookup Type: %s\n\n", orNA(capitalize(string(e.HookupType))))

	b.WriteString("CAMPGROUND\n")
	fmt.Fprintf(&b, "   Name: %s\n", orNA(e.CampgroundName()))
	fmt.Fprintf(&b, "   Link: %s\n\n", orNA(linkOf(e.Campground)))

	b.WriteString("CG NOTES\n")
	fmt.Fprintf(&b, "   %s\n\n", orNA(e.CGNotes))

	b.WriteString("TRAIL(S)\n")
	if len(e.Trails) > 1 {
		for i, trail := range e.Trails {
			fmt.Fprintf(&b, "   Trail %d: %s\n", i+1, orNA(trail.Name))
			fmt.Fprintf(&b, "   Link %d:  %s\n", i+1, orNA(trail.Link))
		}
	} else {
		var name, link string
		if e.Trail != nil {
			name, link = e.Trail.Name, e.Trail.Link
		}
		fmt.Fprintf(&b, "   Name: %s\n", orNA(name))
		fmt.Fprintf(&b, "   Link: %s\n", orNA(link))
	}
	b.WriteString("\n")

	b.WriteString("TRAIL NOTES\n")
	fmt.Fprintf(&b, "   %s\n\n", orNA(e.TrailNotes))

	b.WriteString("DIRECTIONS\n")
	fmt.Fprintf(&b, "   %s\n\n", orNA(e.Directions))

	b.WriteString("OTHER\n")
	fmt.Fprintf(&b, "   %s\n\n", orNA(e.Other))

	b.WriteString("RELATED BLOG POST\n")
	fmt.Fprintf(&b, "   %s\n", orNA(e.BlogPost))
	fmt.Fprintf(&b, "   Link: %s\n\n", orNA(e.BlogPostLink))

	b.WriteString("CONTRIBUTOR\n")
	fmt.Fprintf(&b, "   %s\n\n", orNA(e.Contributor))

	b.WriteString("CONTRIBUTOR'S BLOG\n")
	fmt.Fprintf(&b, "   %s\n", orNA(e.ContributorBlog))
	fmt.Fprintf(&b, "   Link: %s\n", orNA(e.ContributorBlogLink))

	if coords != nil {
		b.WriteString("\n" + rule + "\n")
		b.WriteString("GOOGLE PLACES COORDINATES\n")
		b.WriteString(rule + "\n")
		if coords.Failed() {
			fmt.Fprintf(&b, "   Error: %s\n", coords.Error)
		} else {
			fmt.Fprintf(&b, "   Place ID:     %s\n", orNA(coords.PlaceID))
			fmt.Fprintf(&b, "   Display Name: %s\n", orNA(coords.DisplayName))
			fmt.Fprintf(&b, "   Address:      %s\n", orNA(coords.FormattedAddress))
			fmt.Fprintf(&b, "   Latitude:     %g\n", coords.Latitude)
			fmt.Fprintf(&b, "   Longitude:    %g\n", coords.Longitude)
		}
	}

	b.WriteString(rule + "\n")
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func linkOf(ln *model.LinkedName) string {
	if ln == nil {
		return ""
	}
	return ln.Link
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
