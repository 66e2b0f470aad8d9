package weather

import "time"

// FormatClockTime renders an epoch-seconds timestamp as a 12-hour time
// in the given UTC offset, without a leading zero, e.g. "6:45 AM".
// A zero timestamp renders as "N/A".
func FormatClockTime(ts int64, offsetSeconds int) string {
	if ts == 0 {
		return "N/A"
	}
	loc := time.FixedZone("", offsetSeconds)
	return time.Unix(ts, 0).In(loc).Format("3:04 PM")
}
