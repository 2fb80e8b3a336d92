package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"weather-dashboard/internal/weather"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherProvider implements weather.Provider against the
// OpenWeatherMap current-conditions and 5-day/3-hour forecast endpoints.
type OpenWeatherProvider struct {
	apiKey  string
	lang    string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	circuit *gobreaker.CircuitBreaker
}

// Option overrides provider defaults.
type Option func(*OpenWeatherProvider)

// WithBaseURL points the provider at an alternate API root. Used by tests.
func WithBaseURL(u string) Option {
	return func(p *OpenWeatherProvider) { p.baseURL = u }
}

func NewOpenWeatherProvider(client *http.Client, apiKey, lang string, opts ...Option) *OpenWeatherProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	p := &OpenWeatherProvider{
		apiKey:  apiKey,
		lang:    lang,
		baseURL: defaultBaseURL,
		client:  client,
		// The free tier allows 60 calls/minute; one per second with a
		// small burst keeps a refresh pair well inside that.
		limiter: rate.NewLimiter(rate.Limit(1), 4),
		circuit: cb,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *OpenWeatherProvider) get(ctx context.Context, path, city string, units weather.Units) (*http.Response, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("q", city)
	values.Set("units", string(units))
	values.Set("appid", p.apiKey)
	if p.lang != "" {
		values.Set("lang", p.lang)
	}

	u := fmt.Sprintf("%s%s?%s", p.baseURL, path, values.Encode())
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	return doRequest(ctx, p.client, p.limiter, p.circuit, req)
}

// Current fetches and normalizes current conditions for the city.
func (p *OpenWeatherProvider) Current(ctx context.Context, city string, units weather.Units) (*weather.CurrentConditions, error) {
	resp, err := p.get(ctx, "/weather", city, units)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
			Sunrise int64  `json:"sunrise"`
			Sunset  int64  `json:"sunset"`
		} `json:"sys"`
		Main struct {
			Temp      *float64 `json:"temp"`
			FeelsLike *float64 `json:"feels_like"`
			Humidity  *float64 `json:"humidity"`
			Pressure  *float64 `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed *float64 `json:"speed"`
		} `json:"wind"`
		Visibility *float64 `json:"visibility"`
		Clouds     struct {
			All *float64 `json:"all"`
		} `json:"clouds"`
		Timezone int64 `json:"timezone"`
		Weather  []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	cond := &weather.CurrentConditions{
		Name:        payload.Name,
		Country:     payload.Sys.Country,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		Pressure:    payload.Main.Pressure,
		WindSpeed:   payload.Wind.Speed,
		Visibility:  payload.Visibility,
		CloudCover:  payload.Clouds.All,
		Sunrise:     payload.Sys.Sunrise,
		Sunset:      payload.Sys.Sunset,
		UTCOffset:   payload.Timezone,
	}
	if len(payload.Weather) > 0 {
		cond.Description = payload.Weather[0].Description
		cond.Icon = payload.Weather[0].Icon
	}
	return cond, nil
}

// Forecast fetches the raw 5-day/3-hour forecast series for the city.
func (p *OpenWeatherProvider) Forecast(ctx context.Context, city string, units weather.Units) (*weather.ForecastSeries, error) {
	resp, err := p.get(ctx, "/forecast", city, units)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp     *float64 `json:"temp"`
				Humidity *float64 `json:"humidity"`
			} `json:"main"`
			Pop float64 `json:"pop"`
		} `json:"list"`
		City struct {
			Timezone int64 `json:"timezone"`
		} `json:"city"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	series := &weather.ForecastSeries{UTCOffset: payload.City.Timezone}
	for _, item := range payload.List {
		series.Entries = append(series.Entries, weather.ForecastEntry{
			Timestamp:     item.Dt,
			Temperature:   item.Main.Temp,
			Humidity:      item.Main.Humidity,
			Precipitation: item.Pop,
		})
	}
	return series, nil
}
