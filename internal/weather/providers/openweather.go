package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/NQvelo/weather-app/internal/weather"
	"github.com/sony/gobreaker"
)

// maxForecastSamples limits how many 3-hour entries we keep: eight cover
// roughly the next 24 hours.
const maxForecastSamples = 8

// OpenWeatherClient fetches current conditions and the 3-hour forecast
// from OpenWeatherMap, queried by city name.
type OpenWeatherClient struct {
	apiKey      string
	currentURL  string
	forecastURL string
	cfg         ClientConfig
	circuit     *gobreaker.CircuitBreaker
}

// NewOpenWeatherClient creates a client against explicit endpoints so
// tests can point it at fake servers.
func NewOpenWeatherClient(cfg ClientConfig, apiKey, currentURL, forecastURL string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:      apiKey,
		currentURL:  currentURL,
		forecastURL: forecastURL,
		cfg:         cfg,
		circuit:     newBreaker("openweather"),
	}
}

// Current fetches current conditions for a city. Temperatures arrive in
// Kelvin and are passed through unconverted.
func (c *OpenWeatherClient) Current(ctx context.Context, city string) (*weather.Observation, error) {
	req, err := c.buildRequest(c.currentURL, city)
	if err != nil {
		return nil, err
	}

	resp, err := doRequest(ctx, c.cfg, c.circuit, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			Temp     float64 `json:"temp"`
			Pressure int     `json:"pressure"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Sys struct {
			Sunrise int64 `json:"sunrise"`
			Sunset  int64 `json:"sunset"`
		} `json:"sys"`
		Timezone   int      `json:"timezone"`
		Visibility *float64 `json:"visibility"`
		Coord      *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("%w: missing weather block", ErrMalformed)
	}

	obs := &weather.Observation{
		Condition:      weather.ConditionFromText(payload.Weather[0].Main),
		Description:    payload.Weather[0].Description,
		TemperatureK:   payload.Main.Temp,
		PressureHpa:    payload.Main.Pressure,
		HumidityPct:    payload.Main.Humidity,
		Sunrise:        payload.Sys.Sunrise,
		Sunset:         payload.Sys.Sunset,
		TimezoneOffset: payload.Timezone,
		VisibilityM:    payload.Visibility,
	}
	if payload.Coord != nil {
		obs.Coord = &weather.Coordinates{Lat: payload.Coord.Lat, Lon: payload.Coord.Lon}
	}
	return obs, nil
}

// Forecast fetches the 3-hour forecast for a city and keeps the first
// eight entries, converted to Celsius samples in time order.
func (c *OpenWeatherClient) Forecast(ctx context.Context, city string) (*weather.ForecastSeries, error) {
	req, err := c.buildRequest(c.forecastURL, city)
	if err != nil {
		return nil, err
	}

	resp, err := doRequest(ctx, c.cfg, c.circuit, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		City struct {
			Timezone int `json:"timezone"`
		} `json:"city"`
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Weather []struct {
				Main string `json:"main"`
			} `json:"weather"`
		} `json:"list"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	items := payload.List
	if len(items) > maxForecastSamples {
		items = items[:maxForecastSamples]
	}

	samples := make([]weather.ForecastSample, 0, len(items))
	for _, item := range items {
		cond := weather.ConditionUnknown
		if len(item.Weather) > 0 {
			cond = weather.ConditionFromText(item.Weather[0].Main)
		}
		samples = append(samples, weather.ForecastSample{
			Time:         time.Unix(item.Dt, 0).UTC(),
			TemperatureC: weather.KelvinToCelsius(item.Main.Temp),
			Condition:    cond,
		})
	}

	return &weather.ForecastSeries{
		Samples:        samples,
		TimezoneOffset: payload.City.Timezone,
	}, nil
}

func (c *OpenWeatherClient) buildRequest(baseURL, city string) (*http.Request, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", c.apiKey)
	return http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", baseURL, values.Encode()), nil)
}
