package cache

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Key naming is part of the cache contract: pattern invalidation and any
// external tooling inspecting cache contents depend on these exact
// formats.

func RestaurantKey(id string) string {
	return "restaurant:" + id
}

func SchedulesKey(restaurantID string) string {
	return "schedules:" + restaurantID
}

func SearchKey(term string) string {
	return "search:" + term
}

func ListKey(page, limit int, withAddress, withSchedules bool) string {
	return fmt.Sprintf("restaurants:%d:%d:%t:%t", page, limit, withAddress, withSchedules)
}

const (
	MatchRestaurantLists = "^restaurants:"
	MatchSearches        = "^search:"
)

// Invalidate applies the write-side protocol: drop the entity keys the
// mutation touched, then the whole listing and search families. Serving
// a stale list page for up to the TTL window is the failure mode this
// guards against, so every mutation must end up here after its storage
// write commits. Cache faults are logged and swallowed; the cache is an
// optimization, not a dependency.
func Invalidate(ctx context.Context, c Cache, keys ...string) {
	if err := c.Del(ctx, keys...); err != nil {
		log.Warn().Err(err).Msg("cache: failed to delete keys")
	}
	if err := c.DelMatch(ctx, MatchRestaurantLists); err != nil {
		log.Warn().Err(err).Msg("cache: failed to invalidate listing family")
	}
	if err := c.DelMatch(ctx, MatchSearches); err != nil {
		log.Warn().Err(err).Msg("cache: failed to invalidate search family")
	}
}
