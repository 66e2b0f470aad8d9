package weather

import (
	"fmt"
	"strings"
)

// KelvinToCelsius converts an upstream Kelvin temperature to Celsius.
func KelvinToCelsius(k float64) float64 {
	return k - 273.15
}

// ConditionFromText maps an OpenWeatherMap condition label to the
// normalized Condition set. Unrecognized labels map to unknown.
func ConditionFromText(text string) Condition {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "clear":
		return ConditionClear
	case "clouds":
		return ConditionClouds
	case "rain":
		return ConditionRain
	case "drizzle":
		return ConditionDrizzle
	case "snow":
		return ConditionSnow
	case "mist", "fog", "haze", "smoke":
		return ConditionFog
	case "thunderstorm":
		return ConditionThunderstorm
	default:
		return ConditionUnknown
	}
}

// ConditionFromWMO maps a WMO weather code to the normalized Condition
// set. Codes outside every known range map to clouds, mirroring the
// upstream convention of a cloudy depiction for unclassified codes.
func ConditionFromWMO(code int) Condition {
	switch code {
	case 0:
		return ConditionClear
	case 1, 2, 3:
		return ConditionClouds
	case 45, 48:
		return ConditionFog
	case 51, 53, 55, 56, 57, 61, 63, 65, 66, 67, 80, 81, 82:
		return ConditionRain
	case 52, 54:
		return ConditionDrizzle
	case 71, 73, 75, 77, 85, 86:
		return ConditionSnow
	case 95, 96, 99:
		return ConditionThunderstorm
	default:
		return ConditionClouds
	}
}

// UVBand returns the WHO severity band for a UV index value.
func UVBand(uv float64) string {
	switch {
	case uv <= 2:
		return "Low"
	case uv <= 5:
		return "Moderate"
	case uv <= 7:
		return "High"
	case uv <= 10:
		return "Very High"
	default:
		return "Extreme"
	}
}

// FormatUV renders a measured UV index as "value (band)", e.g. "5.2 (Moderate)".
func FormatUV(uv float64) string {
	return fmt.Sprintf("%.1f (%s)", uv, UVBand(uv))
}
