package stats

import (
	"context"
	"fmt"

	"github.com/2beens/gearfitness/internal/telemetry/tracing"
	"github.com/2beens/gearfitness/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// BestLifts returns, per exercise name, the top ranked weighted set of the user.
// The window ordering is the same as RanksBefore.
func (r *Repo) BestLifts(ctx context.Context, userID uuid.UUID, names []string) (_ []Lift, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.bestlifts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.StringSlice("names", names))

	if len(names) == 0 {
		return []Lift{}, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT name, weight_lbs, reps, date_performed, workout_name
		FROM (
			SELECT e.name, ws.weight_lbs, ws.reps, w.date_performed, w.name AS workout_name,
			       ROW_NUMBER() OVER (
			           PARTITION BY e.name
			           ORDER BY CASE WHEN ws.reps = 1 THEN 0 ELSE 1 END, ws.weight_lbs DESC, w.date_performed DESC
			       ) AS rn
			FROM workout_set ws
			JOIN workout_exercise we ON we.workout_exercise_id = ws.workout_exercise_id
			JOIN workout w ON w.workout_id = we.workout_id
			JOIN exercise e ON e.exercise_id = we.exercise_id
			WHERE w.user_id = $1
			  AND ws.weight_lbs IS NOT NULL
			  AND e.name = ANY($2::text[])
		) ranked
		WHERE rn = 1`,
		userID, names,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lifts := []Lift{}
	for rows.Next() {
		var l Lift
		if err := rows.Scan(&l.ExerciseName, &l.WeightLbs, &l.Reps, &l.DatePerformed, &l.WorkoutName); err != nil {
			return nil, fmt.Errorf("scan lift: %w", err)
		}
		lifts = append(lifts, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lifts, nil
}

// WorkoutDates returns the performed date of every workout of the user.
func (r *Repo) WorkoutDates(ctx context.Context, userID uuid.UUID) (_ []pkg.Date, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.workoutdates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(ctx, `SELECT date_performed FROM workout WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := []pkg.Date{}
	for rows.Next() {
		var d pkg.Date
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan workout date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dates, nil
}
