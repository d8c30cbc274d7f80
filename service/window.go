package service

import (
	"github.com/ariebrainware/hospital-directory/model"
	"gorm.io/datatypes"
)

// window is a validated weekday with a start and end time of day.
type window struct {
	day   model.Weekday
	start datatypes.Time
	end   datatypes.Time
}

func parseWindow(day, start, end string) (window, error) {
	d, ok := model.NormalizeWeekday(day)
	if !ok {
		return window{}, InvalidInput("day must be a valid weekday")
	}
	s, err := model.ParseClock(start)
	if err != nil {
		return window{}, InvalidInput("%s", err.Error())
	}
	e, err := model.ParseClock(end)
	if err != nil {
		return window{}, InvalidInput("%s", err.Error())
	}
	return window{day: d, start: s, end: e}, nil
}

// within reports whether both bounds of w lie inside [open, close].
func (w window) within(open, close datatypes.Time) bool {
	return !(w.start < open || w.end < open || w.start > close || w.end > close)
}

func (w window) ordered() bool {
	return w.end > w.start
}
