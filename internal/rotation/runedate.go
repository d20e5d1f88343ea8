package rotation

import "time"

// Epoch is day zero of the game clock.
var Epoch = time.Date(2002, time.February, 27, 0, 0, 0, 0, time.UTC)

const secondsPerDay = 86400

// RuneDate returns the fractional number of days between Epoch and t.
// It works on Unix seconds because time.Duration saturates about 292 years
// out.
func RuneDate(t time.Time) float64 {
	secs := float64(t.Unix()-Epoch.Unix()) + float64(t.Nanosecond())/1e9
	return secs / secondsPerDay
}

// Day returns the whole rune-date for t. The fraction is truncated toward
// zero, so the half day before Epoch is still day 0.
func Day(t time.Time) int64 {
	return int64(RuneDate(t))
}

// DateOf returns the UTC instant at which day starts.
func DateOf(day int64) time.Time {
	return Epoch.AddDate(0, 0, int(day))
}

// ParseDate reads a YYYY-MM-DD date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, time.UTC)
}

// floorMod is the modulo used by the seed tables: the result takes the
// sign of m, so negative days still land in [0, m).
func floorMod(d, m int64) int64 {
	r := d % m
	if r < 0 {
		r += m
	}
	return r
}
