package stats

import (
	"strings"
	"time"

	"github.com/2beens/gearfitness/internal/errs"
)

var weekdaysByName = map[string]time.Weekday{
	"SUNDAY":    time.Sunday,
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
}

// SplitDayKeys are the weekly split keys, Monday first.
var SplitDayKeys = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ParseWeekday accepts full weekday names (any case) and three letter abbreviations.
func ParseWeekday(name string) (time.Weekday, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if d, ok := weekdaysByName[upper]; ok {
		return d, nil
	}
	if len(upper) == 3 {
		for full, d := range weekdaysByName {
			if strings.HasPrefix(full, upper) {
				return d, nil
			}
		}
	}
	return time.Sunday, errs.Invalid("Unrecognized weekday: %s", name)
}

func splitDayKey(d time.Weekday) string {
	// SplitDayKeys is Monday first, time.Weekday is Sunday first
	return SplitDayKeys[(int(d)+6)%7]
}
