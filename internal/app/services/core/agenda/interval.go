package agenda

import (
	"fmt"
	"time"

	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"
)

// Interval is a half-open [Start, End) time block expressed in minutes since
// midnight. Equal boundaries never count as overlap.
type Interval struct {
	Start int
	End   int
}

func ToMinutes(clock string) (int, error) {
	parsed, err := time.Parse(constvars.TimeLayout, clock)
	if err != nil {
		return 0, exceptions.ErrCannotParseTime(err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// IntervalOf parses a HH:MM pair into an Interval without checking ordering;
// callers validate Start < End where it matters.
func IntervalOf(startTime, endTime string) (Interval, error) {
	start, err := ToMinutes(startTime)
	if err != nil {
		return Interval{}, err
	}
	end, err := ToMinutes(endTime)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}
