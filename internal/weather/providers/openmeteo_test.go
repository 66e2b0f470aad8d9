package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestCurrentUVParsesPayload(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"latitude":  r.URL.Query().Get("latitude"),
			"longitude": r.URL.Query().Get("longitude"),
			"current":   r.URL.Query().Get("current"),
		}
		w.Write([]byte(`{"current":{"uv_index":5.2}}`))
	}))
	defer server.Close()

	client := NewOpenMeteoClient(testClientConfig(), server.URL)
	value, err := client.CurrentUV(context.Background(), 51.51, -0.13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 5.2 {
		t.Errorf("uv = %v, want 5.2", value)
	}
	want := map[string]string{"latitude": "51.51", "longitude": "-0.13", "current": "uv_index"}
	if !reflect.DeepEqual(gotQuery, want) {
		t.Errorf("query = %v, want %v", gotQuery, want)
	}
}

func TestCurrentUVMissingValue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current":{}}`))
	}))
	defer server.Close()

	client := NewOpenMeteoClient(testClientConfig(), server.URL)
	if _, err := client.CurrentUV(context.Background(), 51.51, -0.13); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestCurrentUVMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("oops"))
	}))
	defer server.Close()

	client := NewOpenMeteoClient(testClientConfig(), server.URL)
	if _, err := client.CurrentUV(context.Background(), 51.51, -0.13); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestDailyParsesColumnarPayload(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"daily":         r.URL.Query().Get("daily"),
			"forecast_days": r.URL.Query().Get("forecast_days"),
		}
		w.Write([]byte(`{"daily":{
			"time": ["2026-06-15", "2026-06-16", "2026-06-17"],
			"temperature_2m_max": [25.1, 26.3, 24.0],
			"temperature_2m_min": [15.2, 16.0, 14.4],
			"weathercode": [0, 61, 95]
		}}`))
	}))
	defer server.Close()

	client := NewOpenMeteoClient(testClientConfig(), server.URL)
	series, err := client.Daily(context.Background(), 51.51, -0.13, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery["daily"] != "temperature_2m_max,temperature_2m_min,weathercode" {
		t.Errorf("daily param = %q", gotQuery["daily"])
	}
	if gotQuery["forecast_days"] != "15" {
		t.Errorf("forecast_days = %q, want 15", gotQuery["forecast_days"])
	}
	if !reflect.DeepEqual(series.Dates, []string{"2026-06-15", "2026-06-16", "2026-06-17"}) {
		t.Errorf("dates = %v", series.Dates)
	}
	if !reflect.DeepEqual(series.MaxC, []float64{25.1, 26.3, 24.0}) {
		t.Errorf("max temps = %v", series.MaxC)
	}
	if !reflect.DeepEqual(series.MinC, []float64{15.2, 16.0, 14.4}) {
		t.Errorf("min temps = %v", series.MinC)
	}
	if !reflect.DeepEqual(series.Codes, []int{0, 61, 95}) {
		t.Errorf("codes = %v", series.Codes)
	}
}

func TestDailyStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewOpenMeteoClient(testClientConfig(), server.URL)
	_, err := client.Daily(context.Background(), 51.51, -0.13, 15)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", statusErr.Code)
	}
}
