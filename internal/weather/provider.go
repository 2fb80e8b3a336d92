package weather

import "context"

// Provider abstracts the upstream weather data source. Both calls of a
// fetch cycle are parameterized identically.
type Provider interface {
	Current(ctx context.Context, city string, units Units) (*CurrentConditions, error)
	Forecast(ctx context.Context, city string, units Units) (*ForecastSeries, error)
}
