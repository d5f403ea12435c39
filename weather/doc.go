// Package weather is a small client for the MetaWeather location and
// forecast API.
//
// SearchCity resolves free text to a single location. When the service
// returns several candidates the configured Selector decides; PromptSelector
// asks on a terminal, SelectorFunc adapts anything else. Forecast returns the
// consolidated daily forecast for a WOEID ("Where On Earth ID") in the order
// the service supplies it, with temperatures rounded to one decimal.
package weather
