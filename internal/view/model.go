package view

import (
	"fmt"
	"strings"

	"weather-dashboard/internal/session"
	"weather-dashboard/internal/weather"
)

const (
	chartPoints = 8
	chipPoints  = 4
)

// Metric is one labelled value for the metric-card grid.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Note  string `json:"note,omitempty"`
}

// ChartSeries is one line of the forecast chart.
type ChartSeries struct {
	Name string     `json:"name"`
	Data []*float64 `json:"data"`
}

// ChartData feeds the chart collaborator: shared labels plus temperature
// and humidity series rendered on independent scales.
type ChartData struct {
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

// CurrentSummary is the hero block of the dashboard.
type CurrentSummary struct {
	Temperature string `json:"temperature"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Model is everything the presentation layer needs to render one frame.
type Model struct {
	City           string                  `json:"city"`
	Units          weather.Units           `json:"units"`
	LocationLabel  string                  `json:"locationLabel"`
	BackgroundKey  string                  `json:"backgroundKey"`
	Current        *CurrentSummary         `json:"current,omitempty"`
	Metrics        []Metric                `json:"metrics"`
	ForecastPoints []weather.ForecastPoint `json:"forecastPoints"`
	Chips          []weather.ForecastPoint `json:"chips"`
	Chart          ChartData               `json:"chart"`
	Loading        bool                    `json:"loading"`
	Error          string                  `json:"error,omitempty"`
	LastUpdatedAt  string                  `json:"lastUpdatedAt,omitempty"`
}

// Build derives the display model from a session snapshot. It is a pure
// re-derivation invoked on every read; nothing is cached between frames.
func Build(s session.State) Model {
	points := weather.Project(s.Forecast)

	m := Model{
		City:           s.City,
		Units:          s.Units,
		LocationLabel:  locationLabel(s),
		BackgroundKey:  backgroundKey(s),
		Metrics:        metrics(s.Current, s.Units, points),
		ForecastPoints: points,
		Chips:          bound(points, chipPoints),
		Chart:          chart(bound(points, chartPoints)),
		Loading:        s.Loading,
		LastUpdatedAt:  weather.FormatUpdatedAt(s.LastUpdatedAt),
	}
	if s.Err != nil {
		m.Error = s.Err.Error()
	}
	if s.Current != nil {
		m.Current = &CurrentSummary{
			Temperature: weather.FormatTemperature(s.Current.Temperature, s.Units),
			Description: s.Current.Description,
			Icon:        s.Current.Icon,
		}
	}
	return m
}

// metrics builds the fixed-order metric list. No current conditions
// means no metrics, not placeholders.
func metrics(c *weather.CurrentConditions, units weather.Units, points []weather.ForecastPoint) []Metric {
	if c == nil {
		return []Metric{}
	}

	humidity := Metric{Label: "Humidity", Value: weather.FormatPercent(c.Humidity)}
	if len(points) > 0 {
		humidity.Note = fmt.Sprintf("%d%% chance of rain next 3h", points[0].Precipitation)
	}

	return []Metric{
		{Label: "Feels like", Value: weather.FormatTemperature(c.FeelsLike, units)},
		humidity,
		{Label: "Wind", Value: weather.FormatWindSpeed(c.WindSpeed, units)},
		{Label: "Pressure", Value: weather.FormatPressure(c.Pressure)},
		{Label: "Visibility", Value: weather.FormatVisibility(c.Visibility)},
		{Label: "Cloud cover", Value: weather.FormatPercent(c.CloudCover)},
		{Label: "Sunrise", Value: weather.FormatSunEvent(c.Sunrise, c.UTCOffset)},
		{Label: "Sunset", Value: weather.FormatSunEvent(c.Sunset, c.UTCOffset)},
	}
}

func locationLabel(s session.State) string {
	if s.Current != nil {
		return fmt.Sprintf("%s, %s", s.Current.Name, s.Current.Country)
	}
	return s.City
}

// backgroundKey is the resolved location name once a fetch has landed,
// the committed city before that. The rendering layer owns how and
// whether it is applied.
func backgroundKey(s session.State) string {
	name := s.City
	if s.Current != nil && s.Current.Name != "" {
		name = s.Current.Name
	}
	return strings.ToLower(strings.TrimSpace(name))
}

func chart(points []weather.ForecastPoint) ChartData {
	labels := make([]string, 0, len(points))
	temps := make([]*float64, 0, len(points))
	hums := make([]*float64, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Label)
		temps = append(temps, p.Temperature)
		hums = append(hums, p.Humidity)
	}
	return ChartData{
		Labels: labels,
		Series: []ChartSeries{
			{Name: "Temperature", Data: temps},
			{Name: "Humidity", Data: hums},
		},
	}
}

func bound(points []weather.ForecastPoint, n int) []weather.ForecastPoint {
	if len(points) > n {
		return points[:n]
	}
	return points
}
