// ABOUTME: WeekDay enumeration used as the schedule unit for trackers.
// ABOUTME: Monday=1 through Sunday=7, with conversion from time.Time.
package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// WeekDay is a day of the week, Monday=1 through Sunday=7.
type WeekDay int

const (
	Monday WeekDay = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// AllWeekDays lists the seven days in schedule order.
var AllWeekDays = []WeekDay{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

var weekDayNames = map[WeekDay]string{
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
	Sunday:    "sunday",
}

var weekDayShortNames = map[WeekDay]string{
	Monday:    "mon",
	Tuesday:   "tue",
	Wednesday: "wed",
	Thursday:  "thu",
	Friday:    "fri",
	Saturday:  "sat",
	Sunday:    "sun",
}

// WeekDayFromTime converts a time.Time to a WeekDay.
// Go's time.Weekday puts Sunday at 0; here Sunday is 7.
func WeekDayFromTime(t time.Time) WeekDay {
	wd := int(t.Weekday())
	if wd == 0 {
		return Sunday
	}
	return WeekDay(wd)
}

// CurrentWeekDay returns the WeekDay for the local current date.
func CurrentWeekDay() WeekDay {
	return WeekDayFromTime(time.Now())
}

// IsValid reports whether the value is one of the seven days.
func (w WeekDay) IsValid() bool {
	return w >= Monday && w <= Sunday
}

// String returns the full lowercase day name, e.g. "monday".
func (w WeekDay) String() string {
	if name, ok := weekDayNames[w]; ok {
		return name
	}
	return fmt.Sprintf("weekday(%d)", int(w))
}

// ShortName returns the three-letter day name, e.g. "mon".
func (w WeekDay) ShortName() string {
	if name, ok := weekDayShortNames[w]; ok {
		return name
	}
	return fmt.Sprintf("weekday(%d)", int(w))
}

// ParseWeekDay accepts a full or three-letter lowercase day name.
// Unknown input is reported as corrupt data, not a panic.
func ParseWeekDay(s string) (WeekDay, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, w := range AllWeekDays {
		if s == weekDayNames[w] || s == weekDayShortNames[w] {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrCorruptData, s)
}

// EncodeSchedule renders a schedule as a canonical comma-joined string
// of short names sorted by ordinal, e.g. "mon,wed,fri".
func EncodeSchedule(schedule []WeekDay) string {
	days := make([]WeekDay, len(schedule))
	copy(days, schedule)
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.ShortName())
	}
	return strings.Join(names, ",")
}

// DecodeSchedule parses the canonical schedule encoding. An empty string
// yields an empty schedule.
func DecodeSchedule(s string) ([]WeekDay, error) {
	if s == "" {
		return nil, nil
	}

	var schedule []WeekDay
	seen := make(map[WeekDay]bool)
	for _, part := range strings.Split(s, ",") {
		w, err := ParseWeekDay(part)
		if err != nil {
			return nil, err
		}
		if !seen[w] {
			seen[w] = true
			schedule = append(schedule, w)
		}
	}
	return schedule, nil
}

// ScheduleContains reports whether the schedule includes the given day.
func ScheduleContains(schedule []WeekDay, day WeekDay) bool {
	for _, d := range schedule {
		if d == day {
			return true
		}
	}
	return false
}
