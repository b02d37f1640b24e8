package watch

import "strconv"

// Duration is an amount of time that can be added to or subtracted from a
// Watch. It is implemented by Seconds and DurationString only.
type Duration interface {
	// Seconds resolves the duration to a signed number of seconds.
	Seconds() (int64, error)
	String() string
}

// Seconds is a raw number of seconds. Negative values move the watch back.
type Seconds int64

func (s Seconds) Seconds() (int64, error) { return int64(s), nil }

func (s Seconds) String() string { return strconv.FormatInt(int64(s), 10) }

// DurationString is an "HH:MM:SS", "HH:MM" or "HH" offset. It never carries
// AM/PM semantics.
type DurationString string

func (d DurationString) Seconds() (int64, error) { return ParseDuration(string(d)) }

func (d DurationString) String() string { return string(d) }
