package weather

import "time"

// EstimateUV is the fallback UV resolver used when no measured index is
// available: a coarse band derived from daylight, the local hour, and
// the current condition. Missing sunrise or sunset yields "N/A" — the
// only way the snapshot's UV field can end up as "N/A".
func EstimateUV(sunrise, sunset int64, cond Condition, now time.Time) string {
	if sunrise == 0 || sunset == 0 {
		return "N/A"
	}

	ts := now.Unix()
	if ts < sunrise || ts > sunset {
		return "None (Night)"
	}

	hour := now.Hour()
	switch {
	case hour >= 10 && hour <= 16:
		// Peak hours: condition decides the band.
		switch cond {
		case ConditionClear:
			return "High (7-9)"
		case ConditionClouds:
			return "Moderate (4-6)"
		default:
			return "Low (2-4)"
		}
	case (hour >= 6 && hour < 10) || (hour > 16 && hour <= 20):
		return "Moderate (3-5)"
	default:
		return "Low (1-3)"
	}
}
