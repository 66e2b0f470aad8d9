package weather

import "context"

// Coordinates is a geographic point reported by the anchor provider.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Observation is the parsed current-conditions response: the anchor for
// every aggregation. Sunrise/Sunset are epoch seconds, zero when absent.
type Observation struct {
	Condition      Condition
	Description    string
	TemperatureK   float64
	PressureHpa    int
	HumidityPct    int
	Sunrise        int64
	Sunset         int64
	TimezoneOffset int // seconds east of UTC
	VisibilityM    *float64
	Coord          *Coordinates
}

// ForecastSeries is the parsed 3-hour forecast response: time-ascending
// samples plus the forecast location's UTC offset.
type ForecastSeries struct {
	Samples        []ForecastSample
	TimezoneOffset int // seconds east of UTC
}

// DailySeries is the columnar daily forecast response. The arrays are
// positionally parallel but may have unequal lengths.
type DailySeries struct {
	Dates []string
	MaxC  []float64
	MinC  []float64
	Codes []int
}

// CurrentProvider fetches current conditions for a city.
type CurrentProvider interface {
	Current(ctx context.Context, city string) (*Observation, error)
}

// HourlyProvider fetches the 3-hour-granularity forecast for a city.
type HourlyProvider interface {
	Forecast(ctx context.Context, city string) (*ForecastSeries, error)
}

// UVProvider fetches the current UV index for a coordinate.
type UVProvider interface {
	CurrentUV(ctx context.Context, lat, lon float64) (float64, error)
}

// DailyProvider fetches the columnar daily forecast for a coordinate.
type DailyProvider interface {
	Daily(ctx context.Context, lat, lon float64, days int) (*DailySeries, error)
}
