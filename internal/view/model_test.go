package view

import (
	"strings"
	"testing"
	"time"

	"weather-dashboard/internal/session"
	"weather-dashboard/internal/weather"
)

func fptr(v float64) *float64 { return &v }

func conditions() *weather.CurrentConditions {
	return &weather.CurrentConditions{
		Name:        "Bogotá",
		Country:     "CO",
		Temperature: fptr(18.6),
		FeelsLike:   fptr(17.9),
		Humidity:    fptr(72),
		WindSpeed:   fptr(3.1),
		Pressure:    fptr(1021),
		Visibility:  fptr(10000),
		CloudCover:  fptr(75),
		Sunrise:     1700000000,
		Sunset:      1700042000,
		UTCOffset:   -18000,
		Description: "broken clouds",
		Icon:        "04d",
	}
}

func tenEntrySeries() *weather.ForecastSeries {
	s := &weather.ForecastSeries{UTCOffset: -18000}
	for i := 0; i < 10; i++ {
		s.Entries = append(s.Entries, weather.ForecastEntry{
			Timestamp:     1700000000 + int64(i)*10800,
			Temperature:   fptr(15 + float64(i)),
			Humidity:      fptr(70),
			Precipitation: 0.25,
		})
	}
	return s
}

func TestBuildWithoutConditions(t *testing.T) {
	m := Build(session.State{City: "Bogotá", Units: weather.UnitsMetric})

	if len(m.Metrics) != 0 {
		t.Errorf("got %d metrics, want 0", len(m.Metrics))
	}
	if m.LocationLabel != "Bogotá" {
		t.Errorf("location label = %q, want committed city", m.LocationLabel)
	}
	if m.BackgroundKey != "bogotá" {
		t.Errorf("background key = %q", m.BackgroundKey)
	}
	if m.Current != nil {
		t.Error("unexpected current summary")
	}
	if len(m.ForecastPoints) != 0 {
		t.Errorf("got %d forecast points, want 0", len(m.ForecastPoints))
	}
}

func TestBuildWithConditions(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := Build(session.State{
		City:          "bogota",
		Units:         weather.UnitsMetric,
		Current:       conditions(),
		Forecast:      tenEntrySeries(),
		LastUpdatedAt: &ts,
	})

	if len(m.Metrics) != 8 {
		t.Fatalf("got %d metrics, want 8", len(m.Metrics))
	}
	wantLabels := []string{"Feels like", "Humidity", "Wind", "Pressure", "Visibility", "Cloud cover", "Sunrise", "Sunset"}
	for i, want := range wantLabels {
		if m.Metrics[i].Label != want {
			t.Errorf("metric %d label = %q, want %q", i, m.Metrics[i].Label, want)
		}
	}
	if m.Metrics[0].Value != "18°C" {
		t.Errorf("feels like = %q, want %q", m.Metrics[0].Value, "18°C")
	}
	if m.Metrics[1].Value != "72%" || !strings.Contains(m.Metrics[1].Note, "25%") {
		t.Errorf("humidity metric = %+v", m.Metrics[1])
	}

	if m.LocationLabel != "Bogotá, CO" {
		t.Errorf("location label = %q", m.LocationLabel)
	}
	if m.BackgroundKey != "bogotá" {
		t.Errorf("background key should prefer resolved name, got %q", m.BackgroundKey)
	}
	if m.Current == nil || m.Current.Temperature != "19°C" {
		t.Errorf("current summary = %+v", m.Current)
	}

	if len(m.ForecastPoints) != 8 {
		t.Errorf("got %d forecast points, want 8", len(m.ForecastPoints))
	}
	if len(m.Chips) != 4 {
		t.Errorf("got %d chips, want 4", len(m.Chips))
	}
	if len(m.Chart.Labels) != 8 || len(m.Chart.Series) != 2 {
		t.Errorf("chart shape: %d labels, %d series", len(m.Chart.Labels), len(m.Chart.Series))
	}
	if m.Chart.Series[0].Name != "Temperature" || m.Chart.Series[1].Name != "Humidity" {
		t.Errorf("chart series: %q, %q", m.Chart.Series[0].Name, m.Chart.Series[1].Name)
	}
	if m.LastUpdatedAt != "12:00:00" {
		t.Errorf("lastUpdatedAt = %q", m.LastUpdatedAt)
	}
}

func TestBuildSurfacesError(t *testing.T) {
	m := Build(session.State{City: "x", Units: weather.UnitsMetric, Err: session.ErrForecastFetch})
	if m.Error != session.ErrForecastFetch.Error() {
		t.Errorf("error = %q", m.Error)
	}
}
