package store

import "github.com/rvingwithbikes/campground-cli/internal/model"

// BuildRecord assembles the persisted entry from an extracted entry and an
// optional coordinate result. Hookup type defaults to full; coordinates are
// attached only when the lookup actually produced a place — an error result
// contributes no latitude, longitude, or place id. Absent fields stay unset
// so they are pruned from the JSON.
func BuildRecord(entry model.Entry, coords *model.Coordinates) model.Entry {
	record := entry

	if record.HookupType == "" {
		record.HookupType = model.HookupFull
	}

	if coords != nil && !coords.Failed() {
		lat, lng := coords.Latitude, coords.Longitude
		record.Latitude = &lat
		record.Longitude = &lng
		record.PlaceID = coords.PlaceID
	}

	return record
}
