package weather

import "time"

// maxDailyPoints caps the daily series length.
const maxDailyPoints = 15

// NormalizeDaily zips the columnar daily response into display-ready
// entries, at most 15, in the order the dates arrive. An index beyond the
// end of a temperature array leaves that field absent; a missing weather
// code falls back to code 0. Dates that fail to parse keep their raw
// form truncated to 10 characters.
func NormalizeDaily(series *DailySeries) []DailyPoint {
	if series == nil {
		return nil
	}

	n := len(series.Dates)
	if n > maxDailyPoints {
		n = maxDailyPoints
	}

	points := make([]DailyPoint, 0, n)
	for i := 0; i < n; i++ {
		label := series.Dates[i]
		if dt, err := time.Parse("2006-01-02", label); err == nil {
			label = dt.Format("Mon 02")
		} else if len(label) > 10 {
			label = label[:10]
		}

		var minC, maxC *float64
		if i < len(series.MaxC) {
			v := series.MaxC[i]
			maxC = &v
		}
		if i < len(series.MinC) {
			v := series.MinC[i]
			minC = &v
		}

		code := 0
		if i < len(series.Codes) {
			code = series.Codes[i]
		}

		points = append(points, DailyPoint{
			Day:       label,
			MinC:      minC,
			MaxC:      maxC,
			Condition: ConditionFromWMO(code),
		})
	}

	return points
}
