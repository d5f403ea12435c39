package weather

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-toolbox/dsp/core"
)

// Forecast returns the consolidated daily forecast for woeid. Temperatures
// are rounded to one decimal; order and count follow the service.
func (c *Client) Forecast(ctx context.Context, woeid int) ([]ForecastDay, error) {
	var resp locationResponse
	if err := c.getJSON(ctx, "api/location/"+strconv.Itoa(woeid), nil, &resp); err != nil {
		return nil, fmt.Errorf("forecast for woeid %d: %w", woeid, err)
	}

	days := make([]ForecastDay, len(resp.ConsolidatedWeather))
	for i, d := range resp.ConsolidatedWeather {
		days[i] = ForecastDay{
			ApplicableDate:   d.ApplicableDate,
			WeatherStateName: d.WeatherStateName,
			TheTemp:          core.RoundTo(d.TheTemp, 1),
		}
	}

	return days, nil
}

// ForecastForCity resolves query with SearchCity and fetches its forecast.
func (c *Client) ForecastForCity(ctx context.Context, query string) (*City, []ForecastDay, error) {
	city, err := c.SearchCity(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	if city == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrCityNotFound, query)
	}

	days, err := c.Forecast(ctx, city.WOEID)
	if err != nil {
		return city, nil, err
	}

	return city, days, nil
}
