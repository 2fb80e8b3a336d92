package session

import "errors"

// Error kinds surfaced in the session state. Each is terminal for the
// cycle it belongs to, never for the session; the next trigger gets a
// fresh attempt.
var (
	ErrMissingCredential = errors.New("weather API key is not configured")
	ErrInvalidLocation   = errors.New("please enter a city name")
	ErrCurrentFetch      = errors.New("could not load current conditions")
	ErrForecastFetch     = errors.New("could not load the forecast")
)
