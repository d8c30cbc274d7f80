package model

import (
	"unicode"
	"unicode/utf8"
)

// Weekday is the canonical, capitalized name of a day of the week.
type Weekday string

const (
	Sunday    Weekday = "Sunday"
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// Weekdays lists every valid Weekday starting from Sunday.
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// NormalizeWeekday upper-cases the first character of token and reports
// whether the result is one of the seven canonical weekday names.
// The rest of the token is left untouched, so "monday" is accepted while
// "MONDAY" and " monday" are not.
func NormalizeWeekday(token string) (Weekday, bool) {
	if token == "" {
		return "", false
	}
	r, size := utf8.DecodeRuneInString(token)
	day := Weekday(string(unicode.ToUpper(r)) + token[size:])
	for _, d := range Weekdays {
		if d == day {
			return d, true
		}
	}
	return "", false
}

func (d Weekday) String() string {
	return string(d)
}
