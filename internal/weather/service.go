package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// ErrNoData is returned when the anchor fetch fails or the city resolves
// to nothing displayable. Any other error from the service is an
// internal failure.
var ErrNoData = errors.New("no weather data available")

// forecastDays is the span requested from the daily provider.
const forecastDays = 15

// Service orchestrates the provider clients and merges their outputs
// into a single Snapshot. The current-conditions fetch is the anchor:
// if it fails, the whole aggregation fails. The hourly, UV and daily
// sub-fetches are enrichments whose failures degrade to fallback or
// empty values without aborting the result.
type Service struct {
	current CurrentProvider
	hourly  HourlyProvider
	uv      UVProvider
	daily   DailyProvider

	// enrich selects the full pipeline; when false only the anchor fetch
	// runs and the hourly series comes from the fallback pattern.
	enrich bool

	now func() time.Time
}

// NewService creates a Service over the given provider clients.
func NewService(current CurrentProvider, hourly HourlyProvider, uv UVProvider, daily DailyProvider, enrich bool) *Service {
	return &Service{
		current: current,
		hourly:  hourly,
		uv:      uv,
		daily:   daily,
		enrich:  enrich,
		now:     time.Now,
	}
}

// GetWeatherInfo fetches and normalizes weather data for a city.
// It returns ErrNoData (possibly wrapped) when current conditions cannot
// be obtained.
func (s *Service) GetWeatherInfo(ctx context.Context, city string) (*Snapshot, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrNoData
	}

	obs, err := s.current.Current(ctx, city)
	if err != nil {
		log.Printf("current conditions fetch failed for %q: %v", city, err)
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}

	baseTempC := KelvinToCelsius(obs.TemperatureK)

	snap := &Snapshot{
		City:         city,
		Condition:    obs.Condition,
		Description:  obs.Description,
		TemperatureC: int(baseTempC),
		PressureHpa:  obs.PressureHpa,
		HumidityPct:  obs.HumidityPct,
		Sunrise:      FormatClockTime(obs.Sunrise, obs.TimezoneOffset),
		Sunset:       FormatClockTime(obs.Sunset, obs.TimezoneOffset),
		Daily:        []DailyPoint{},
	}
	if obs.VisibilityM != nil {
		km := *obs.VisibilityM / 1000.0
		snap.VisibilityKm = &km
	}

	loc := time.FixedZone("", obs.TimezoneOffset)
	nowLocal := s.now().In(loc)

	if !s.enrich {
		snap.Hourly = FallbackHourly(baseTempC, obs.Condition, nowLocal)
		snap.UVIndex = EstimateUV(obs.Sunrise, obs.Sunset, obs.Condition, nowLocal)
		return snap, nil
	}

	snap.Hourly = s.resolveHourly(ctx, city, baseTempC, obs.Condition, nowLocal)
	snap.UVIndex = s.resolveUV(ctx, obs, nowLocal)

	if obs.Coord != nil {
		series, err := s.daily.Daily(ctx, obs.Coord.Lat, obs.Coord.Lon, forecastDays)
		if err != nil {
			log.Printf("daily forecast fetch failed for %q: %v", city, err)
		} else {
			snap.Daily = NormalizeDaily(series)
		}
	}

	return snap, nil
}

// resolveHourly attempts the 3-hour forecast fetch and interpolates it;
// any failure or empty response degrades to the fallback series built
// from the current observation.
func (s *Service) resolveHourly(ctx context.Context, city string, baseTempC float64, cond Condition, nowLocal time.Time) []HourlyPoint {
	series, err := s.hourly.Forecast(ctx, city)
	if err != nil {
		log.Printf("hourly forecast fetch failed for %q: %v", city, err)
	}
	if err != nil || series == nil || len(series.Samples) == 0 {
		return FallbackHourly(baseTempC, cond, nowLocal)
	}

	// Targets are generated in the forecast location's zone; the sample
	// instants themselves are zone-independent.
	forecastLoc := time.FixedZone("", series.TimezoneOffset)
	return InterpolateHourly(series.Samples, s.now().In(forecastLoc))
}

// resolveUV prefers the measured coordinate-based index and falls back
// to the sunrise/sunset heuristic.
func (s *Service) resolveUV(ctx context.Context, obs *Observation, nowLocal time.Time) string {
	display := "N/A"
	if obs.Coord != nil {
		value, err := s.uv.CurrentUV(ctx, obs.Coord.Lat, obs.Coord.Lon)
		if err != nil {
			log.Printf("uv index fetch failed: %v", err)
		} else {
			display = FormatUV(value)
		}
	}
	if display == "N/A" {
		display = EstimateUV(obs.Sunrise, obs.Sunset, obs.Condition, nowLocal)
	}
	return display
}
