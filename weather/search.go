package weather

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

const searchPath = "api/location/search/"

// SearchCity looks up query and returns exactly one city.
//
// A single hit is returned directly. Several hits are handed to the
// configured Selector; without one an *AmbiguousError is returned. No hits
// yield (nil, nil).
func (c *Client) SearchCity(ctx context.Context, query string) (*City, error) {
	cities, err := c.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	switch len(cities) {
	case 0:
		c.log.Info("city not found", zap.String("query", query))
		return nil, nil
	case 1:
		return &cities[0], nil
	}

	if c.selector == nil {
		return nil, &AmbiguousError{Query: query, Candidates: cities}
	}

	choice, err := c.selector.Select(ctx, cities)
	if err != nil {
		return nil, fmt.Errorf("select city for %q: %w", query, err)
	}
	if choice < 1 || choice > len(cities) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidSelection, choice, len(cities))
	}

	city := cities[choice-1]
	c.log.Debug("city selected", zap.String("query", query), zap.String("title", city.Title), zap.Int("woeid", city.WOEID))

	return &city, nil
}

// Search returns every location matching query, in service order.
func (c *Client) Search(ctx context.Context, query string) ([]City, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("format", "json")

	var cities []City
	if err := c.getJSON(ctx, searchPath, params, &cities); err != nil {
		return nil, fmt.Errorf("search city %q: %w", query, err)
	}

	return cities, nil
}
