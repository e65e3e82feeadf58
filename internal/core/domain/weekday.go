package domain

import "strings"

// Unspecified is the bucket for records without a usable weekday.
const Unspecified = "نامشخص"

// dayOrder is the portal's week, Saturday first, followed by the unspecified bucket.
var dayOrder = [...]string{
	"شنبه",
	"يكشنبه",
	"دوشنبه",
	"سه شنبه",
	"چهارشنبه",
	"پنج شنبه",
	"جمعه",
	Unspecified,
}

// dayAbbreviations maps the shortened day tokens the portal emits to full names.
// "سه شنبه" and "پنج شنبه" contain a space, so splitting the day/time cell on
// whitespace leaves only their first word.
var dayAbbreviations = map[string]string{
	"سه":  "سه شنبه",
	"پنج": "پنج شنبه",
}

// DayOrder returns the fixed bucket order. The slice is a copy.
func DayOrder() []string {
	out := make([]string, len(dayOrder))
	copy(out, dayOrder[:])
	return out
}

// IsKnownDay reports whether name is one of the eight buckets.
func IsKnownDay(name string) bool {
	for _, d := range dayOrder {
		if d == name {
			return true
		}
	}
	return false
}

// CanonicalDay maps an abbreviated weekday token to its full name.
// Any other token is returned unchanged.
func CanonicalDay(token string) string {
	if full, ok := dayAbbreviations[token]; ok {
		return full
	}
	return token
}

// WeekdayToken returns the canonical weekday named by the first
// whitespace-delimited token of dayTime, or "" when there is none.
func WeekdayToken(dayTime string) string {
	fields := strings.Fields(dayTime)
	if len(fields) == 0 {
		return ""
	}
	return CanonicalDay(fields[0])
}

// BucketFor returns the weekday bucket for a day/time value.
// Blank values, the sentinel and unrecognised day names go to Unspecified.
func BucketFor(dayTime string) string {
	if dayTime == UnspecifiedDayTime {
		return Unspecified
	}
	day := WeekdayToken(dayTime)
	if day == "" || !IsKnownDay(day) {
		return Unspecified
	}
	return day
}
