package weather

import (
	"math"
	"time"
)

// maxForecastPoints bounds the projected series to what the dashboard
// can display.
const maxForecastPoints = 8

// Project converts a raw forecast series into display-ready points,
// preserving chronological source order. At most the first 8 entries are
// projected; an absent or empty series projects to an empty sequence,
// which means "no data yet" rather than an error.
func Project(series *ForecastSeries) []ForecastPoint {
	if series == nil || len(series.Entries) == 0 {
		return []ForecastPoint{}
	}

	entries := series.Entries
	if len(entries) > maxForecastPoints {
		entries = entries[:maxForecastPoints]
	}

	points := make([]ForecastPoint, 0, len(entries))
	for _, e := range entries {
		label := time.Unix(e.Timestamp+series.UTCOffset, 0).UTC().Format("Mon 15:04")

		pct := int(math.Round(e.Precipitation * 100))
		if pct < 0 {
			pct = 0
		} else if pct > 100 {
			pct = 100
		}

		points = append(points, ForecastPoint{
			Label:         label,
			Temperature:   e.Temperature,
			Humidity:      e.Humidity,
			Precipitation: pct,
		})
	}
	return points
}
