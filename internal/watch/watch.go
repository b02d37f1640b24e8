// Package watch implements time-of-day arithmetic.
//
// A Watch holds a wall-clock time normalized to 24-hour form together with a
// signed count of the midnights crossed by arithmetic. Times are parsed from
// 12-hour or 24-hour strings, moved by durations given as strings or seconds,
// and rendered back in either mode:
//
//	w, _ := watch.New("13:34", true)
//	_ = w.AddDuration("01:23:45")
//	w.AddSeconds(43434343)
//	fmt.Println(w) // 08:03:28 AM +503 days
//
// All arithmetic is done on int64 seconds, so chained operations are exact.
package watch

import "math"

const secondsPerDay = 24 * 60 * 60

// Watch is a normalized time of day with a day-rollover counter.
// The zero value is midnight in 24-hour display mode.
type Watch struct {
	hours    int
	minutes  int
	seconds  int
	days     int64
	offset   int64
	meridiem bool
}

// New parses time and returns a Watch displaying in 12-hour mode when
// meridiem is true. The designator in the string, not the flag, decides how
// the hour is read: "1:00 PM" is 13:00 in both modes and "13:00" without a
// designator is read as 24-hour time even if meridiem is set.
func New(time string, meridiem bool) (Watch, error) {
	return Parse(time, meridiem)
}

// Parse is New under the conventional Go name.
func Parse(time string, meridiem bool) (Watch, error) {
	secs, err := parseClock(time)
	if err != nil {
		return Watch{}, err
	}
	w := Watch{meridiem: meridiem}
	w.setSecondsOfDay(secs)
	return w, nil
}

// MustParse is like Parse but panics on error. It is meant for tests and
// package-level values with constant input.
func MustParse(time string, meridiem bool) Watch {
	w, err := Parse(time, meridiem)
	if err != nil {
		panic(err)
	}
	return w
}

// Reset re-reads time into w, clearing the day counter and offset. The
// display mode is kept. On error w is left unchanged.
func (w *Watch) Reset(time string) error {
	secs, err := parseClock(time)
	if err != nil {
		return err
	}
	*w = Watch{meridiem: w.meridiem}
	w.setSecondsOfDay(secs)
	return nil
}

func (w Watch) Hours() int   { return w.hours }
func (w Watch) Minutes() int { return w.minutes }
func (w Watch) Seconds() int { return w.seconds }

// Days is the number of midnights crossed by arithmetic, negative when the
// watch was moved back past midnight.
func (w Watch) Days() int64 { return w.days }

// Offset is the net number of seconds applied since construction.
func (w Watch) Offset() int64 { return w.offset }

// Meridiem reports whether the watch displays in 12-hour mode.
func (w Watch) Meridiem() bool { return w.meridiem }

// SecondsOfDay returns hours*3600 + minutes*60 + seconds.
func (w Watch) SecondsOfDay() int64 {
	return int64(w.hours)*3600 + int64(w.minutes)*60 + int64(w.seconds)
}

// ToggleMeridiem switches between 12-hour and 24-hour display. The time and
// day counter are not touched.
func (w *Watch) ToggleMeridiem() { w.meridiem = !w.meridiem }

// SetMeridiem selects 12-hour (true) or 24-hour (false) display.
func (w *Watch) SetMeridiem(meridiem bool) { w.meridiem = meridiem }

// AddSeconds moves the watch by n seconds; negative n moves it back.
func (w *Watch) AddSeconds(n int64) { w.shift(n) }

// SubSeconds moves the watch back by n seconds.
func (w *Watch) SubSeconds(n int64) {
	if n == math.MinInt64 {
		// -MinInt64 does not fit in an int64.
		w.shift(math.MaxInt64)
		w.shift(1)
		return
	}
	w.shift(-n)
}

// AddDuration parses d as a duration string and moves the watch forward.
func (w *Watch) AddDuration(d string) error {
	return w.Add(DurationString(d))
}

// SubDuration parses d as a duration string and moves the watch back.
func (w *Watch) SubDuration(d string) error {
	return w.Sub(DurationString(d))
}

// Add moves the watch forward by d. w is unchanged when d fails to resolve.
func (w *Watch) Add(d Duration) error {
	n, err := d.Seconds()
	if err != nil {
		return err
	}
	w.AddSeconds(n)
	return nil
}

// Sub moves the watch back by d. w is unchanged when d fails to resolve.
func (w *Watch) Sub(d Duration) error {
	n, err := d.Seconds()
	if err != nil {
		return err
	}
	w.SubSeconds(n)
	return nil
}

// Plus returns a copy of w moved forward by d.
func (w Watch) Plus(d Duration) (Watch, error) {
	err := w.Add(d)
	return w, err
}

// Minus returns a copy of w moved back by d.
func (w Watch) Minus(d Duration) (Watch, error) {
	err := w.Sub(d)
	return w, err
}

// shift applies delta by splitting it into whole days and a non-negative
// remainder first, so seconds-of-day never leaves [0, 2*secondsPerDay) and
// the day counter absorbs the rest.
func (w *Watch) shift(delta int64) {
	if delta == 0 {
		return
	}
	days, rem := floorDivMod(delta, secondsPerDay)
	sod := w.SecondsOfDay() + rem
	if sod >= secondsPerDay {
		sod -= secondsPerDay
		days++
	}
	w.setSecondsOfDay(sod)
	w.days += days
	w.offset += delta
}

func (w *Watch) setSecondsOfDay(sod int64) {
	w.hours = int(sod / 3600)
	w.minutes = int(sod % 3600 / 60)
	w.seconds = int(sod % 60)
}

// floorDivMod returns the quotient rounded toward negative infinity and the
// matching remainder in [0, b). b must be positive.
func floorDivMod(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
