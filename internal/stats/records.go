package stats

import (
	"github.com/2beens/gearfitness/internal/workouts"
	"github.com/2beens/gearfitness/pkg"

	"github.com/shopspring/decimal"
)

type PersonalRecord struct {
	ExerciseName  string          `json:"exerciseName"`
	WeightLbs     decimal.Decimal `json:"weightLbs"`
	Reps          int             `json:"reps"`
	DatePerformed *pkg.Date       `json:"datePerformed"`
	WorkoutName   *string         `json:"workoutName"`
}

// Lift is a single weighted set, a candidate for a personal record.
type Lift struct {
	ExerciseName  string
	WeightLbs     decimal.Decimal
	Reps          int
	DatePerformed pkg.Date
	WorkoutName   string
}

// RanksBefore reports whether a is a better record than b:
// single rep sets first, then heavier weight, then the more recent date.
// Mirrors the ordering of the records window query.
func RanksBefore(a, b Lift) bool {
	aSingle, bSingle := a.Reps == 1, b.Reps == 1
	if aSingle != bSingle {
		return aSingle
	}
	if c := a.WeightLbs.Cmp(b.WeightLbs); c != 0 {
		return c > 0
	}
	return a.DatePerformed.After(b.DatePerformed)
}

// LiftsFromWorkouts flattens all weighted sets of the given exercise names.
func LiftsFromWorkouts(ws []workouts.Workout, names []string) []Lift {
	tracked := make(map[string]bool, len(names))
	for _, n := range names {
		tracked[n] = true
	}

	var lifts []Lift
	for _, w := range ws {
		for _, we := range w.Exercises {
			if !tracked[we.Exercise.Name] {
				continue
			}
			for _, s := range we.Sets {
				if !s.WeightLbs.Valid {
					continue
				}
				lifts = append(lifts, Lift{
					ExerciseName:  we.Exercise.Name,
					WeightLbs:     s.WeightLbs.Decimal,
					Reps:          s.Reps,
					DatePerformed: w.DatePerformed,
					WorkoutName:   w.Name,
				})
			}
		}
	}
	return lifts
}

// SelectRecords returns exactly one record per tracked name, in the given order.
// Names without any lift get a zero placeholder.
func SelectRecords(tracked []string, lifts []Lift) []PersonalRecord {
	best := make(map[string]Lift, len(tracked))
	for _, l := range lifts {
		current, ok := best[l.ExerciseName]
		if !ok || RanksBefore(l, current) {
			best[l.ExerciseName] = l
		}
	}

	records := make([]PersonalRecord, 0, len(tracked))
	for _, name := range tracked {
		l, ok := best[name]
		if !ok {
			records = append(records, PersonalRecord{
				ExerciseName: name,
				WeightLbs:    decimal.Zero,
			})
			continue
		}
		date := l.DatePerformed
		workoutName := l.WorkoutName
		records = append(records, PersonalRecord{
			ExerciseName:  name,
			WeightLbs:     l.WeightLbs,
			Reps:          l.Reps,
			DatePerformed: &date,
			WorkoutName:   &workoutName,
		})
	}
	return records
}
