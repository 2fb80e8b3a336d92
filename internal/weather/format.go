package weather

import (
	"fmt"
	"math"
	"time"
)

// Placeholder is rendered wherever a numeric value is absent.
const Placeholder = "—"

// FormatTemperature rounds to the nearest whole degree and appends the
// unit glyph.
func FormatTemperature(v *float64, units Units) string {
	if v == nil || math.IsNaN(*v) {
		return Placeholder
	}
	return fmt.Sprintf("%d%s", int(math.Round(*v)), units.TemperatureGlyph())
}

// FormatWindSpeed renders one decimal plus the unit label.
func FormatWindSpeed(v *float64, units Units) string {
	if v == nil || math.IsNaN(*v) {
		return Placeholder
	}
	return fmt.Sprintf("%.1f %s", *v, units.WindLabel())
}

// FormatVisibility converts meters to kilometers with one decimal.
func FormatVisibility(meters *float64) string {
	if meters == nil || math.IsNaN(*meters) {
		return Placeholder
	}
	return fmt.Sprintf("%.1f km", *meters/1000)
}

// FormatPressure renders whole hectopascals.
func FormatPressure(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return Placeholder
	}
	return fmt.Sprintf("%d hPa", int(math.Round(*v)))
}

// FormatPercent renders a whole percentage.
func FormatPercent(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return Placeholder
	}
	return fmt.Sprintf("%d%%", int(math.Round(*v)))
}

// FormatSunEvent renders a sunrise/sunset timestamp as the location's
// local HH:MM. The UTC offset is added to the epoch seconds and the sum
// is displayed pinned to UTC, so the host timezone never shifts it a
// second time.
func FormatSunEvent(ts, utcOffset int64) string {
	if ts == 0 {
		return Placeholder
	}
	return time.Unix(ts+utcOffset, 0).UTC().Format("15:04")
}

// FormatUpdatedAt renders a last-success instant as HH:MM:SS, or empty
// when no cycle has succeeded yet.
func FormatUpdatedAt(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04:05")
}
