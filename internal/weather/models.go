package weather

// Condition represents a normalized high-level weather condition.
// All provider vocabularies (text labels, WMO numeric codes) map into
// this closed set; unmapped values never produce an error.
type Condition string

const (
	ConditionUnknown      Condition = "unknown"
	ConditionClear        Condition = "clear"
	ConditionClouds       Condition = "clouds"
	ConditionRain         Condition = "rain"
	ConditionDrizzle      Condition = "drizzle"
	ConditionSnow         Condition = "snow"
	ConditionFog          Condition = "fog"
	ConditionThunderstorm Condition = "thunderstorm"
)

// HourlyPoint is one slot of the normalized 24-point hourly series.
type HourlyPoint struct {
	Time         string    `json:"time"` // "HH:MM" in the location's zone
	Hour         int       `json:"hour"` // 0-23
	TemperatureC float64   `json:"temperatureC"`
	Condition    Condition `json:"condition"`
}

// DailyPoint is one entry of the multi-day series. MinC/MaxC are nil when
// the upstream columnar arrays were shorter than the date list.
type DailyPoint struct {
	Day       string    `json:"day"` // e.g. "Mon 27"
	MinC      *float64  `json:"temperatureMinC"`
	MaxC      *float64  `json:"temperatureMaxC"`
	Condition Condition `json:"condition"`
}

// Snapshot is the merged result of one aggregation: current conditions
// plus the normalized hourly and daily series. It is immutable once
// returned and owned by the caller.
type Snapshot struct {
	City         string    `json:"city"`
	Condition    Condition `json:"condition"`
	Description  string    `json:"description"`
	TemperatureC int       `json:"temperatureC"`
	PressureHpa  int       `json:"pressureHpa"`
	HumidityPct  int       `json:"humidityPercent"`
	Sunrise      string    `json:"sunrise"` // e.g. "6:45 AM", or "N/A"
	Sunset       string    `json:"sunset"`
	VisibilityKm *float64  `json:"visibilityKm,omitempty"`
	UVIndex      string    `json:"uvIndex"` // e.g. "5.2 (Moderate)"

	Hourly []HourlyPoint `json:"hourly"`
	Daily  []DailyPoint  `json:"daily"`
}
