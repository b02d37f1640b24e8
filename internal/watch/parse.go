package watch

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// FormatHelp describes the accepted input shapes. It is shown under parse
// errors by the command line and the interactive UI.
const FormatHelp = "Valid formats:\n" +
	"• 24-hour time: HH[:MM[:SS]] (e.g., '23:30', '09:45:10')\n" +
	"• 12-hour time: HH[:MM[:SS]][AM|PM] (e.g., '11:30PM', '2:15:01 A.M')\n" +
	"• Duration: HH[:MM[:SS]] or whole seconds (e.g., '1:23:45', '4343')"

// parseClock parses a wall-clock reading in either 12-hour or 24-hour form
// and returns its seconds since midnight.
// Supported forms:
// - 24-hour: "HH", "HH:MM", "HH:MM:SS" (e.g., "23:30", "09:45:10")
// - 12-hour: the same followed by AM/PM (e.g., "11:30PM", "2:15:01 a.m.")
func parseClock(input string) (int64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, malformed(input, "", "", "empty time")
	}

	body, designator := splitDesignator(trimmed)
	fields, err := splitFields(input, body)
	if err != nil {
		return 0, err
	}

	var hms [3]int64
	for i, f := range fields {
		v, err := parseField(input, fieldNames[i], f)
		if err != nil {
			return 0, err
		}
		hms[i] = v
	}
	h, m, s := hms[0], hms[1], hms[2]

	if designator == "" {
		if h > 23 {
			return 0, outOfRange(input, "hours", fields[0], "must be 0-23")
		}
	} else {
		pm, err := parseDesignator(input, designator)
		if err != nil {
			return 0, err
		}
		if h < 1 || h > 12 {
			return 0, outOfRange(input, "hours", fields[0], "must be 1-12 with AM/PM")
		}
		// 12 AM is midnight, 12 PM is noon.
		h %= 12
		if pm {
			h += 12
		}
	}
	if m > 59 {
		return 0, outOfRange(input, "minutes", fields[1], "must be 0-59")
	}
	if s > 59 {
		return 0, outOfRange(input, "seconds", fields[2], "must be 0-59")
	}

	return h*3600 + m*60 + s, nil
}

var fieldNames = [3]string{"hours", "minutes", "seconds"}

// splitDesignator separates a trailing AM/PM-like token from the numeric
// part. The token must directly follow a digit, optionally after spaces;
// otherwise the whole string is returned as the body so that the field
// parser reports it as malformed.
func splitDesignator(s string) (body, designator string) {
	i := len(s)
	for i > 0 {
		c := rune(s[i-1])
		if c > unicode.MaxASCII || !(unicode.IsLetter(c) || c == '.' || unicode.IsSpace(c)) {
			break
		}
		i--
	}
	suffix := strings.TrimSpace(s[i:])
	if suffix == "" || i == 0 || !isDigit(s[i-1]) {
		return s, ""
	}
	return s[:i], suffix
}

func parseDesignator(input, designator string) (pm bool, err error) {
	token := strings.ToUpper(strings.Map(func(r rune) rune {
		if r == '.' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, designator))

	switch token {
	case "AM":
		return false, nil
	case "PM":
		return true, nil
	}
	return false, &ParseError{
		Kind:  UnrecognizedMeridiem,
		Input: input,
		Field: "meridiem",
		Value: designator,
		Msg:   "expected AM or PM",
	}
}

func splitFields(input, body string) ([]string, error) {
	fields := strings.Split(body, ":")
	if len(fields) > 3 {
		return nil, malformed(input, "", body, "expected at most three ':' separated fields")
	}
	return fields, nil
}

// parseField reads one unsigned decimal field. Signs, spaces and other
// characters are rejected so that "-1" or "1 5" cannot slip through Atoi.
func parseField(input, field, value string) (int64, error) {
	if value == "" {
		return 0, malformed(input, field, "", "empty field")
	}
	for i := 0; i < len(value); i++ {
		if !isDigit(value[i]) {
			return 0, malformed(input, field, value, "not a number")
		}
	}
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, outOfRange(input, field, value, "too large")
	}
	return v, nil
}

// ParseDuration converts a duration string ("HH:MM:SS", "HH:MM" or "HH") to
// seconds. Only digits and ':' are accepted and fields are not bounded by
// clock limits, so "1:90" is 2h30m.
func ParseDuration(input string) (int64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, malformed(input, "", "", "empty duration")
	}

	fields, err := splitFields(input, trimmed)
	if err != nil {
		return 0, err
	}

	var total int64
	for i, f := range fields {
		v, err := parseField(input, fieldNames[i], f)
		if err != nil {
			return 0, err
		}
		unit := unitSeconds[i]
		if v > (math.MaxInt64-total)/unit {
			return 0, outOfRange(input, fieldNames[i], f, "duration overflows")
		}
		total += v * unit
	}
	return total, nil
}

var unitSeconds = [3]int64{3600, 60, 1}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
