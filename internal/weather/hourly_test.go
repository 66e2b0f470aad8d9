package weather

import (
	"math"
	"testing"
	"time"
)

// fixtureSamples returns eight 3-hour samples starting at 12:00 on the
// given day, covering roughly the next 24 hours.
func fixtureSamples(loc *time.Location) []ForecastSample {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, loc)
	temps := []float64{10, 13, 16, 19, 16, 13, 10, 7}
	conds := []Condition{
		ConditionClear, ConditionClear, ConditionClouds, ConditionClouds,
		ConditionRain, ConditionRain, ConditionClouds, ConditionClear,
	}
	samples := make([]ForecastSample, 0, len(temps))
	for i := range temps {
		samples = append(samples, ForecastSample{
			Time:         base.Add(time.Duration(i) * 3 * time.Hour),
			TemperatureC: temps[i],
			Condition:    conds[i],
		})
	}
	return samples
}

func TestInterpolateHourlyShape(t *testing.T) {
	loc := time.FixedZone("", 3600)
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, loc)

	points := InterpolateHourly(fixtureSamples(loc), now)

	if len(points) != 24 {
		t.Fatalf("expected 24 points, got %d", len(points))
	}
	for i, p := range points {
		wantHour := (14 + i) % 24
		if p.Hour != wantHour {
			t.Errorf("point %d: hour = %d, want %d", i, p.Hour, wantHour)
		}
		wantTime := time.Date(2026, 3, 10, 14, 0, 0, 0, loc).Add(time.Duration(i) * time.Hour).Format("15:04")
		if p.Time != wantTime {
			t.Errorf("point %d: time = %q, want %q", i, p.Time, wantTime)
		}
	}
}

func TestInterpolateHourlyLinear(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, loc)
	samples := fixtureSamples(loc)

	points := InterpolateHourly(samples, now)

	// 14:00 sits two thirds of the way from the 12:00 sample (10) to the
	// 15:00 sample (13).
	want := 10 + (13-10)*(2.0/3.0)
	if math.Abs(points[0].TemperatureC-want) > 1e-9 {
		t.Errorf("point 0: temperature = %v, want %v", points[0].TemperatureC, want)
	}

	// 15:00 is exactly on a sample.
	if math.Abs(points[1].TemperatureC-13) > 1e-9 {
		t.Errorf("point 1: temperature = %v, want 13", points[1].TemperatureC)
	}

	// Interpolated values stay within the bracketing pair.
	for i, p := range points {
		if p.TemperatureC < 7-1e-9 || p.TemperatureC > 19+1e-9 {
			t.Errorf("point %d: temperature %v outside sample range", i, p.TemperatureC)
		}
	}
}

func TestInterpolateHourlyConditionNearest(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, loc)
	samples := []ForecastSample{
		{Time: time.Date(2026, 3, 10, 12, 0, 0, 0, loc), TemperatureC: 10, Condition: ConditionClear},
		{Time: time.Date(2026, 3, 10, 18, 0, 0, 0, loc), TemperatureC: 16, Condition: ConditionRain},
	}

	points := InterpolateHourly(samples, now)

	// 14:00 is closer to the 12:00 sample.
	if points[2].Condition != ConditionClear {
		t.Errorf("point 2: condition = %v, want %v", points[2].Condition, ConditionClear)
	}
	// 15:00 is the exact midpoint; ties resolve to the earlier sample.
	if points[3].Condition != ConditionClear {
		t.Errorf("point 3 (midpoint): condition = %v, want %v", points[3].Condition, ConditionClear)
	}
	// 16:00 is closer to the 18:00 sample.
	if points[4].Condition != ConditionRain {
		t.Errorf("point 4: condition = %v, want %v", points[4].Condition, ConditionRain)
	}
}

func TestInterpolateHourlyBeyondLastSample(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, loc)
	samples := fixtureSamples(loc)

	points := InterpolateHourly(samples, now)

	// The last sample is 09:00 next day at 7 degrees; every later target
	// repeats it verbatim.
	last := samples[len(samples)-1]
	for i := 19; i < 24; i++ {
		if math.Abs(points[i].TemperatureC-last.TemperatureC) > 1e-9 {
			t.Errorf("point %d: temperature = %v, want %v", i, points[i].TemperatureC, last.TemperatureC)
		}
		if points[i].Condition != last.Condition {
			t.Errorf("point %d: condition = %v, want %v", i, points[i].Condition, last.Condition)
		}
	}
}

func TestInterpolateHourlyBeforeFirstSample(t *testing.T) {
	loc := time.UTC
	// All samples are hours in the future.
	now := time.Date(2026, 3, 10, 8, 15, 0, 0, loc)
	samples := fixtureSamples(loc)

	points := InterpolateHourly(samples, now)

	first := samples[0]
	for i := 0; i < 4; i++ { // 08:00 through 11:00 precede the 12:00 sample
		if math.Abs(points[i].TemperatureC-first.TemperatureC) > 1e-9 {
			t.Errorf("point %d: temperature = %v, want %v", i, points[i].TemperatureC, first.TemperatureC)
		}
		if points[i].Condition != first.Condition {
			t.Errorf("point %d: condition = %v, want %v", i, points[i].Condition, first.Condition)
		}
	}
}

func TestInterpolateHourlyEmpty(t *testing.T) {
	loc := time.FixedZone("", -5*3600)
	now := time.Date(2026, 3, 10, 22, 45, 0, 0, loc)

	points := InterpolateHourly(nil, now)

	if len(points) != 24 {
		t.Fatalf("expected 24 points, got %d", len(points))
	}
	for i, p := range points {
		if p.TemperatureC != defaultTemperatureC {
			t.Errorf("point %d: temperature = %v, want %v", i, p.TemperatureC, defaultTemperatureC)
		}
		if p.Condition != ConditionUnknown {
			t.Errorf("point %d: condition = %v, want unknown", i, p.Condition)
		}
		if want := (22 + i) % 24; p.Hour != want {
			t.Errorf("point %d: hour = %d, want %d", i, p.Hour, want)
		}
	}
}

func TestFallbackHourly(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 9, 10, 0, 0, loc)

	points := FallbackHourly(18, ConditionClouds, now)

	if len(points) != 24 {
		t.Fatalf("expected 24 points, got %d", len(points))
	}
	for i, p := range points {
		want := 18 + (float64(i%8)-3.5)*1.5
		if math.Abs(p.TemperatureC-want) > 1e-9 {
			t.Errorf("point %d: temperature = %v, want %v", i, p.TemperatureC, want)
		}
		if p.Condition != ConditionClouds {
			t.Errorf("point %d: condition = %v, want clouds", i, p.Condition)
		}
		if wantHour := (9 + i) % 24; p.Hour != wantHour {
			t.Errorf("point %d: hour = %d, want %d", i, p.Hour, wantHour)
		}
	}
}
