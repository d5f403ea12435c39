package weather

// City is a location search hit.
type City struct {
	Title        string `json:"title"`
	WOEID        int    `json:"woeid"`
	LocationType string `json:"location_type,omitempty"`
	LattLong     string `json:"latt_long,omitempty"`
}

// ForecastDay is one entry of a consolidated forecast.
type ForecastDay struct {
	ApplicableDate   string  `json:"applicable_date"`
	WeatherStateName string  `json:"weather_state_name"`
	TheTemp          float64 `json:"the_temp"`
}

type locationResponse struct {
	Title               string        `json:"title"`
	WOEID               int           `json:"woeid"`
	ConsolidatedWeather []ForecastDay `json:"consolidated_weather"`
}
