package model

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// ClockLayout is the textual representation used for every time-of-day field.
const ClockLayout = "15:04:05"

// ParseClock parses an HH:mm:ss string into a time-of-day value.
func ParseClock(value string) (datatypes.Time, error) {
	t, err := time.Parse(ClockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("time %q must use the HH:mm:ss format", value)
	}
	return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
}
