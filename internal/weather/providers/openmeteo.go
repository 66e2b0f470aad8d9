package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/NQvelo/weather-app/internal/weather"
	"github.com/sony/gobreaker"
)

// OpenMeteoClient fetches the current UV index and the columnar daily
// forecast from Open-Meteo, queried by coordinates. No API key needed.
type OpenMeteoClient struct {
	baseURL string
	cfg     ClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoClient(cfg ClientConfig, baseURL string) *OpenMeteoClient {
	return &OpenMeteoClient{
		baseURL: baseURL,
		cfg:     cfg,
		circuit: newBreaker("openmeteo"),
	}
}

// CurrentUV fetches the current UV index for a coordinate. A response
// without a uv_index value yields ErrNoData.
func (c *OpenMeteoClient) CurrentUV(ctx context.Context, lat, lon float64) (float64, error) {
	values := url.Values{}
	values.Set("latitude", formatCoord(lat))
	values.Set("longitude", formatCoord(lon))
	values.Set("current", "uv_index")

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return 0, err
	}

	resp, err := doRequest(ctx, c.cfg, c.circuit, req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var payload struct {
		Current struct {
			UVIndex *float64 `json:"uv_index"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if payload.Current.UVIndex == nil {
		return 0, fmt.Errorf("%w: uv_index missing", ErrNoData)
	}
	return *payload.Current.UVIndex, nil
}

// Daily fetches the columnar daily forecast (dates, max temps, min temps,
// weather codes) for a coordinate. Temperatures arrive in Celsius.
func (c *OpenMeteoClient) Daily(ctx context.Context, lat, lon float64, days int) (*weather.DailySeries, error) {
	values := url.Values{}
	values.Set("latitude", formatCoord(lat))
	values.Set("longitude", formatCoord(lon))
	values.Set("daily", "temperature_2m_max,temperature_2m_min,weathercode")
	values.Set("forecast_days", strconv.Itoa(days))

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := doRequest(ctx, c.cfg, c.circuit, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Daily struct {
			Time        []string  `json:"time"`
			TempMax     []float64 `json:"temperature_2m_max"`
			TempMin     []float64 `json:"temperature_2m_min"`
			WeatherCode []int     `json:"weathercode"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &weather.DailySeries{
		Dates: payload.Daily.Time,
		MaxC:  payload.Daily.TempMax,
		MinC:  payload.Daily.TempMin,
		Codes: payload.Daily.WeatherCode,
	}, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
