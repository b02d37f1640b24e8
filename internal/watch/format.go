package watch

import (
	"fmt"
	"strings"
)

// String renders the watch using its display mode:
//
//	24-hour: "HH:MM:SS"
//	12-hour: "HH:MM:SS AM" or "HH:MM:SS PM"
//
// followed by " +N days" or " -N days" when the day counter is not zero.
func (w Watch) String() string {
	return w.Format(w.meridiem)
}

// Format renders the watch in 12-hour mode when meridiem is true and 24-hour
// mode otherwise, regardless of the watch's own display flag.
func (w Watch) Format(meridiem bool) string {
	var b strings.Builder
	if meridiem {
		b.WriteString(w.twelveHour())
	} else {
		b.WriteString(w.Clock())
	}
	b.WriteString(DaySuffix(w.days))
	return b.String()
}

// Clock renders the 24-hour "HH:MM:SS" reading without the day suffix.
func (w Watch) Clock() string {
	return fmt.Sprintf("%02d:%02d:%02d", w.hours, w.minutes, w.seconds)
}

func (w Watch) twelveHour() string {
	hours, designator := w.hours, "AM"
	if hours >= 12 {
		hours -= 12
		designator = "PM"
	}
	if hours == 0 {
		hours = 12
	}
	return fmt.Sprintf("%02d:%02d:%02d %s", hours, w.minutes, w.seconds, designator)
}

// DaySuffix renders a day counter the way String appends it: "" for zero,
// otherwise " +N days" or " -N days".
func DaySuffix(days int64) string {
	switch {
	case days > 0:
		return fmt.Sprintf(" +%d days", days)
	case days < 0:
		// negated via uint64 so math.MinInt64 renders correctly
		return fmt.Sprintf(" -%d days", uint64(-(days+1))+1)
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler using String.
func (w Watch) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}
