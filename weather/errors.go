package weather

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCityNotFound is returned by ForecastForCity when the search has no hits.
	ErrCityNotFound = errors.New("city not found")
	// ErrInvalidSelection is returned when a Selector picks outside the candidate list.
	ErrInvalidSelection = errors.New("invalid city selection")
)

// AmbiguousError is returned when a search has several hits and the client
// has no Selector to choose between them.
type AmbiguousError struct {
	Query      string
	Candidates []City
}

func (e *AmbiguousError) Error() string {
	titles := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		titles[i] = c.Title
	}
	return fmt.Sprintf("query %q matches %d cities: %s", e.Query, len(e.Candidates), strings.Join(titles, ", "))
}

// StatusError reports a non-200 response from the service.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.Code, e.URL)
}
