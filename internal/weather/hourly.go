package weather

import "time"

// ForecastSample is one upstream 3-hour-interval entry, already resolved
// to the forecast location's zone and converted to Celsius. Sequences are
// time-ascending.
type ForecastSample struct {
	Time         time.Time
	TemperatureC float64
	Condition    Condition
}

const (
	hourlySlots = 24

	// Baseline used when no samples and no observation are available.
	defaultTemperatureC = 20.0
)

// truncateToHour zeroes minutes and below in the time's own zone.
func truncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// InterpolateHourly expands sparse 3-hour samples into exactly 24
// contiguous hourly points starting at now truncated to the hour.
// Temperature is linearly interpolated between the bracketing samples;
// the condition comes from the temporally closer endpoint, with midpoint
// ties resolving to the earlier one. Targets outside the sampled range
// use the nearest sample verbatim, with no extrapolation. An empty
// sample list yields a flat series with unknown condition.
func InterpolateHourly(samples []ForecastSample, now time.Time) []HourlyPoint {
	currentHour := truncateToHour(now)
	points := make([]HourlyPoint, 0, hourlySlots)

	if len(samples) == 0 {
		for i := 0; i < hourlySlots; i++ {
			target := currentHour.Add(time.Duration(i) * time.Hour)
			points = append(points, HourlyPoint{
				Time:         target.Format("15:04"),
				Hour:         target.Hour(),
				TemperatureC: defaultTemperatureC,
				Condition:    ConditionUnknown,
			})
		}
		return points
	}

	// Targets ascend, so a single forward pointer suffices: samples[:idx]
	// are <= target and samples[idx:] are > target.
	idx := 0
	for i := 0; i < hourlySlots; i++ {
		target := currentHour.Add(time.Duration(i) * time.Hour)
		for idx < len(samples) && !samples[idx].Time.After(target) {
			idx++
		}

		var (
			temp float64
			cond Condition
		)
		switch {
		case idx == 0:
			// Target precedes the first sample.
			temp = samples[0].TemperatureC
			cond = samples[0].Condition
		case idx == len(samples):
			// Target is past the last sample.
			last := samples[len(samples)-1]
			temp = last.TemperatureC
			cond = last.Condition
		default:
			prev, next := samples[idx-1], samples[idx]
			span := next.Time.Sub(prev.Time)
			if span <= 0 {
				temp = prev.TemperatureC
				cond = prev.Condition
				break
			}
			fromPrev := target.Sub(prev.Time)
			ratio := float64(fromPrev) / float64(span)
			if ratio < 0 {
				ratio = 0
			} else if ratio > 1 {
				ratio = 1
			}
			temp = prev.TemperatureC + (next.TemperatureC-prev.TemperatureC)*ratio
			if 2*fromPrev <= span {
				cond = prev.Condition
			} else {
				cond = next.Condition
			}
		}

		points = append(points, HourlyPoint{
			Time:         target.Format("15:04"),
			Hour:         target.Hour(),
			TemperatureC: temp,
			Condition:    cond,
		})
	}

	return points
}

// FallbackHourly builds a deterministic 24-point series from the current
// observation when the forecast fetch produced nothing: the base
// temperature with a fixed repeating variation, all slots carrying the
// current condition.
func FallbackHourly(baseTempC float64, cond Condition, now time.Time) []HourlyPoint {
	currentHour := truncateToHour(now)
	points := make([]HourlyPoint, 0, hourlySlots)
	for i := 0; i < hourlySlots; i++ {
		target := currentHour.Add(time.Duration(i) * time.Hour)
		variation := (float64(i%8) - 3.5) * 1.5
		points = append(points, HourlyPoint{
			Time:         target.Format("15:04"),
			Hour:         target.Hour(),
			TemperatureC: baseTempC + variation,
			Condition:    cond,
		})
	}
	return points
}
