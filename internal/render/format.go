package render

import (
	"fmt"
	"strconv"
)

// Coins renders n with thousands separators: 1250000 becomes "1,250,000".
func Coins(n int) string {
	if n < 0 {
		return "-" + Coins(-n)
	}
	s := strconv.Itoa(n)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

// XP abbreviates large experience values: 13034431 becomes "13.0M".
func XP(xp int64) string {
	switch {
	case xp >= 1_000_000_000:
		return fmt.Sprintf("%.2fB", float64(xp)/1e9)
	case xp >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(xp)/1e6)
	case xp >= 10_000:
		return fmt.Sprintf("%.1fK", float64(xp)/1e3)
	default:
		return Coins(int(xp))
	}
}

// Rank renders a hiscores rank; non-positive ranks are unranked.
func Rank(rank int64) string {
	if rank <= 0 {
		return "Unranked"
	}
	return "#" + Coins(int(rank))
}

// RelativeDay describes a day offset from today.
func RelativeDay(delta int64) string {
	switch delta {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", delta)
	}
}
