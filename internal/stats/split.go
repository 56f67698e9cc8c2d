package stats

import (
	"time"

	"github.com/2beens/gearfitness/pkg"
)

type WorkoutStats struct {
	TotalWorkouts    int            `json:"totalWorkouts"`
	WorkoutsThisWeek int            `json:"workoutsThisWeek"`
	WeeklySplit      map[string]int `json:"weeklySplit"`
}

// ComputeWorkoutStats derives profile stats from the performed dates of all of a user's workouts.
// The current week runs Monday through Sunday around today.
func ComputeWorkoutStats(performed []pkg.Date, today pkg.Date) WorkoutStats {
	weekStart := today.PrevOrSame(time.Monday)
	weekEnd := today.NextOrSame(time.Sunday)

	stats := WorkoutStats{
		TotalWorkouts: len(performed),
		WeeklySplit:   make(map[string]int, len(SplitDayKeys)),
	}
	for _, key := range SplitDayKeys {
		stats.WeeklySplit[key] = 0
	}

	for _, d := range performed {
		if d.Before(weekStart) || d.After(weekEnd) {
			continue
		}
		stats.WorkoutsThisWeek++
		stats.WeeklySplit[splitDayKey(d.Weekday())]++
	}

	return stats
}
