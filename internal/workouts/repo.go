package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gearfitness/internal/errs"
	"github.com/2beens/gearfitness/internal/telemetry/tracing"
	"github.com/2beens/gearfitness/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound = errs.NotFound("Workout not found")
	ErrUserNotFound    = errs.NotFound("User not found")
)

// PostDraft is a post published together with a submitted workout.
type PostDraft struct {
	PostID   uuid.UUID
	Caption  string
	ImageURL string
}

type CreateParams struct {
	Workout Workout
	Post    *PostDraft
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create persists the workout with all of its exercises and sets (and the optional post) in one transaction.
func (r *Repo) Create(ctx context.Context, params CreateParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	w := params.Workout
	span.SetAttributes(attribute.String("workout.id", w.ID.String()))
	span.SetAttributes(attribute.Int("workout.exercises", len(w.Exercises)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO workout (workout_id, user_id, name, date_performed, duration_min, body_tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		w.ID, w.UserID, w.Name, w.DatePerformed, w.DurationMin, bodyTagsToStrings(w.BodyTags), w.CreatedAt,
	)
	for _, we := range w.Exercises {
		batch.Queue(`
			INSERT INTO workout_exercise (workout_exercise_id, workout_id, exercise_id, position, note)
			VALUES ($1, $2, $3, $4, $5)`,
			we.ID, w.ID, we.Exercise.ID, we.Position, pkg.PtrOrNil(we.Note),
		)
		for _, s := range we.Sets {
			batch.Queue(`
				INSERT INTO workout_set (set_id, workout_exercise_id, set_number, reps, weight_lbs, is_pr)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				s.ID, we.ID, s.SetNumber, s.Reps, s.WeightLbs, s.IsPR,
			)
		}
	}
	if params.Post != nil {
		batch.Queue(`
			INSERT INTO post (post_id, user_id, workout_id, image_url, caption, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			params.Post.PostID, w.UserID, w.ID,
			pkg.PtrOrNil(params.Post.ImageURL), pkg.PtrOrNil(params.Post.Caption), w.CreatedAt,
		)
	}

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return errs.NotFound("Referenced user or exercise not found")
		}
		return fmt.Errorf("insert workout batch: %w", err)
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	rows, err := r.db.Query(ctx, `
		SELECT workout_id, user_id, name, date_performed, duration_min, body_tags, created_at
		FROM workout
		WHERE workout_id = $1`,
		id,
	)
	if err != nil {
		return nil, err
	}
	workouts, err := rows2workouts(rows)
	if err != nil {
		return nil, err
	}
	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}

	if err := r.attachExercises(ctx, workouts); err != nil {
		return nil, err
	}
	return &workouts[0], nil
}

// ListByUser returns the full workout history of a user, oldest first,
// with exercises and sets attached in position / set number order.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listbyuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(ctx, `
		SELECT workout_id, user_id, name, date_performed, duration_min, body_tags, created_at
		FROM workout
		WHERE user_id = $1
		ORDER BY date_performed, created_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	workouts, err := rows2workouts(rows)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))

	if err := r.attachExercises(ctx, workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *Repo) UserExists(ctx context.Context, userID uuid.UUID) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.userexists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM app_user WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *Repo) ExercisesByIDs(ctx context.Context, ids []uuid.UUID) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercisesbyids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ids", len(ids)))

	rows, err := r.db.Query(ctx, `
		SELECT exercise_id, name, body_part, COALESCE(description, '')
		FROM exercise
		WHERE exercise_id = ANY($1::uuid[])`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	return rows2exercises(rows)
}

func (r *Repo) ExercisesByName(ctx context.Context, names []string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercisesbyname")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.StringSlice("names", names))

	rows, err := r.db.Query(ctx, `
		SELECT exercise_id, name, body_part, COALESCE(description, '')
		FROM exercise
		WHERE name = ANY($1::text[])
		ORDER BY name`,
		names,
	)
	if err != nil {
		return nil, err
	}
	return rows2exercises(rows)
}

// attachExercises loads exercises and sets for all given workouts in a single batch round trip.
func (r *Repo) attachExercises(ctx context.Context, workouts []Workout) error {
	if len(workouts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(workouts))
	byID := make(map[uuid.UUID]*Workout, len(workouts))
	for i := range workouts {
		ids = append(ids, workouts[i].ID)
		byID[workouts[i].ID] = &workouts[i]
	}

	batch := &pgx.Batch{}
	batch.Queue(`
		SELECT we.workout_exercise_id, we.workout_id, we.position, COALESCE(we.note, ''),
		       e.exercise_id, e.name, e.body_part, COALESCE(e.description, '')
		FROM workout_exercise we
		JOIN exercise e ON e.exercise_id = we.exercise_id
		WHERE we.workout_id = ANY($1::uuid[])
		ORDER BY we.workout_id, we.position`,
		ids,
	)
	batch.Queue(`
		SELECT ws.set_id, ws.workout_exercise_id, ws.set_number, ws.reps, ws.weight_lbs, ws.is_pr
		FROM workout_set ws
		JOIN workout_exercise we ON we.workout_exercise_id = ws.workout_exercise_id
		WHERE we.workout_id = ANY($1::uuid[])
		ORDER BY ws.workout_exercise_id, ws.set_number`,
		ids,
	)

	br := r.db.SendBatch(ctx, batch)
	defer func() {
		_ = br.Close()
	}()

	exRows, err := br.Query()
	if err != nil {
		return fmt.Errorf("query workout exercises: %w", err)
	}
	type exerciseRef struct {
		workoutID uuid.UUID
		index     int
	}
	refs := map[uuid.UUID]exerciseRef{}
	for exRows.Next() {
		var (
			we        WorkoutExercise
			workoutID uuid.UUID
		)
		if err := exRows.Scan(
			&we.ID, &workoutID, &we.Position, &we.Note,
			&we.Exercise.ID, &we.Exercise.Name, &we.Exercise.BodyPart, &we.Exercise.Description,
		); err != nil {
			exRows.Close()
			return fmt.Errorf("scan workout exercise: %w", err)
		}
		we.Sets = []WorkoutSet{}
		w := byID[workoutID]
		w.Exercises = append(w.Exercises, we)
		refs[we.ID] = exerciseRef{workoutID: workoutID, index: len(w.Exercises) - 1}
	}
	exRows.Close()
	if err := exRows.Err(); err != nil {
		return err
	}

	setRows, err := br.Query()
	if err != nil {
		return fmt.Errorf("query workout sets: %w", err)
	}
	defer setRows.Close()
	for setRows.Next() {
		var (
			s                 WorkoutSet
			workoutExerciseID uuid.UUID
		)
		if err := setRows.Scan(&s.ID, &workoutExerciseID, &s.SetNumber, &s.Reps, &s.WeightLbs, &s.IsPR); err != nil {
			return fmt.Errorf("scan workout set: %w", err)
		}
		ref, ok := refs[workoutExerciseID]
		if !ok {
			return errors.New("workout set references unknown workout exercise")
		}
		we := &byID[ref.workoutID].Exercises[ref.index]
		we.Sets = append(we.Sets, s)
	}
	return setRows.Err()
}

func rows2workouts(rows pgx.Rows) ([]Workout, error) {
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var (
			w        Workout
			bodyTags []string
		)
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Name, &w.DatePerformed, &w.DurationMin, &bodyTags, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		w.BodyTags = BodyTagsFromStrings(bodyTags)
		w.Exercises = []WorkoutExercise{}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.BodyPart, &e.Description); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}
