// Package enrich looks up coordinates for an extracted entry and folds every
// lookup outcome into a single displayable result.
package enrich

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rvingwithbikes/campground-cli/internal/model"
	"github.com/rvingwithbikes/campground-cli/pkg/places"
)

// Coordinates searches for "<name>, <city>, <state>" and returns either the
// located place or an error result. It never propagates an error: missing
// credentials, empty results, and transport failures all become a uniform
// error result shown inline in the coordinates section.
func Coordinates(ctx context.Context, client places.Client, name, city, state string) model.Coordinates {
	query := fmt.Sprintf("%s, %s, %s", name, city, state)

	place, err := client.SearchText(ctx, query)
	switch {
	case errors.Is(err, places.ErrNoAPIKey):
		return model.Coordinates{Error: "No API key found"}
	case errors.Is(err, places.ErrNoResults):
		return model.Coordinates{Error: "No places found"}
	case err != nil:
		zap.L().Warn("places lookup failed", zap.String("query", query), zap.Error(err))
		return model.Coordinates{Error: err.Error()}
	}

	return model.Coordinates{
		PlaceID:          place.ID,
		DisplayName:      place.DisplayName,
		FormattedAddress: place.FormattedAddress,
		Latitude:         place.Latitude,
		Longitude:        place.Longitude,
	}
}
