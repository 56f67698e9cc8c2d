package stats_test

import (
	"time"

	"github.com/2beens/gearfitness/internal/workouts"
	"github.com/2beens/gearfitness/pkg"

	"github.com/shopspring/decimal"
)

type testSet struct {
	reps   int
	weight string // empty for bodyweight
}

func date(year int, month time.Month, day int) pkg.Date {
	return pkg.NewDate(year, month, day)
}

func newWorkout(name string, performed pkg.Date, exercise string, sets ...testSet) workouts.Workout {
	we := workouts.WorkoutExercise{
		Exercise: workouts.Exercise{Name: exercise},
		Position: 1,
	}
	for i, s := range sets {
		ws := workouts.WorkoutSet{SetNumber: i + 1, Reps: s.reps}
		if s.weight != "" {
			ws.WeightLbs = decimal.NewNullDecimal(decimal.RequireFromString(s.weight))
		}
		we.Sets = append(we.Sets, ws)
	}
	return workouts.Workout{
		Name:          name,
		DatePerformed: performed,
		Exercises:     []workouts.WorkoutExercise{we},
	}
}

func repeatSet(n, reps int, weight string) []testSet {
	sets := make([]testSet, n)
	for i := range sets {
		sets[i] = testSet{reps: reps, weight: weight}
	}
	return sets
}
