package weather

// Units selects the measurement system requested from the upstream API
// and the labels used when rendering values.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// Valid reports whether u is one of the supported unit systems.
func (u Units) Valid() bool {
	return u == UnitsMetric || u == UnitsImperial
}

// TemperatureGlyph returns the temperature suffix for the unit system.
func (u Units) TemperatureGlyph() string {
	if u == UnitsImperial {
		return "°F"
	}
	return "°C"
}

// WindLabel returns the wind speed unit label for the unit system.
func (u Units) WindLabel() string {
	if u == UnitsImperial {
		return "mph"
	}
	return "m/s"
}

// CurrentConditions is the normalized current weather for a resolved
// location. Optional numerics are pointers so absence in the upstream
// payload survives decoding.
type CurrentConditions struct {
	Name        string
	Country     string
	Temperature *float64
	FeelsLike   *float64
	Humidity    *float64 // percent
	WindSpeed   *float64
	Pressure    *float64 // hPa
	Visibility  *float64 // meters
	CloudCover  *float64 // percent
	Sunrise     int64    // unix seconds
	Sunset      int64    // unix seconds
	UTCOffset   int64    // seconds east of UTC at the location
	Description string
	Icon        string
}

// ForecastEntry is one raw 3-hour forecast slot.
type ForecastEntry struct {
	Timestamp     int64 // unix seconds
	Temperature   *float64
	Humidity      *float64
	Precipitation float64 // probability 0..1
}

// ForecastSeries is the ordered raw forecast plus the UTC offset of the
// originating location. Entries are chronological as delivered upstream.
type ForecastSeries struct {
	Entries   []ForecastEntry
	UTCOffset int64
}

// ForecastPoint is a display-ready, time-bucketed forecast sample.
type ForecastPoint struct {
	Label         string   `json:"label"`
	Temperature   *float64 `json:"temperature"`
	Humidity      *float64 `json:"humidity"`
	Precipitation int      `json:"precipitation"` // percent 0..100
}
