package workouts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gearfitness/internal/errs"
	"github.com/2beens/gearfitness/internal/telemetry/metrics"
	"github.com/2beens/gearfitness/internal/telemetry/tracing"
	"github.com/2beens/gearfitness/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Create(ctx context.Context, params CreateParams) error
	Get(ctx context.Context, id uuid.UUID) (*Workout, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Workout, error)
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
}

type exerciseCatalog interface {
	ByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Exercise, error)
}

type SubmitSet struct {
	Reps   *int   `json:"reps" validate:"omitempty,min=0"`
	Weight string `json:"weight"`
}

type SubmitExercise struct {
	ExerciseID uuid.UUID   `json:"exerciseId" validate:"required"`
	Note       string      `json:"note" validate:"max=1000"`
	Sets       []SubmitSet `json:"sets" validate:"dive"`
}

type SubmitRequest struct {
	Name        string           `json:"name" validate:"required,max=128"`
	DurationMin *int             `json:"durationMin" validate:"omitempty,min=0"`
	BodyTags    []BodyTag        `json:"bodyTags" validate:"min=1,dive,bodytag"`
	Exercises   []SubmitExercise `json:"exercises" validate:"dive"`
	CreatePost  bool             `json:"createPost"`
	Caption     string           `json:"caption" validate:"max=2000"`
	ImageURL    string           `json:"imageUrl" validate:"omitempty,url"`
}

type SubmitResult struct {
	Workout *Workout   `json:"workout"`
	PostID  *uuid.UUID `json:"postId,omitempty"`
}

type Service struct {
	repo           workoutsRepo
	catalog        exerciseCatalog
	validate       *validator.Validate
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo workoutsRepo, catalog exerciseCatalog, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		catalog:        catalog,
		validate:       NewValidator(),
		metricsManager: metricsManager,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// WithClock replaces the clock used for the performed date and creation time.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("bodytag", func(fl validator.FieldLevel) bool {
		return BodyTag(fl.Field().String()).Valid()
	})
	return v
}

// Submit persists a workout, its exercises and their sets (and optionally a post) atomically.
// Positions and set numbers follow the request order, starting at 1. Sets without reps or
// with a blank weight are skipped.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, req SubmitRequest) (_ *SubmitResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.submit")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, errs.FromValidation("Invalid workout", err)
	}

	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	exerciseIDs := make([]uuid.UUID, 0, len(req.Exercises))
	for _, e := range req.Exercises {
		exerciseIDs = append(exerciseIDs, e.ExerciseID)
	}
	catalog, err := s.catalog.ByIDs(ctx, exerciseIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve exercises: %w", err)
	}

	now := s.now()
	workout := Workout{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          strings.TrimSpace(req.Name),
		DatePerformed: pkg.DateOf(now),
		DurationMin:   req.DurationMin,
		BodyTags:      req.BodyTags,
		CreatedAt:     now,
		Exercises:     make([]WorkoutExercise, 0, len(req.Exercises)),
	}

	for i, submitted := range req.Exercises {
		exercise, ok := catalog[submitted.ExerciseID]
		if !ok {
			return nil, errs.NotFound("Exercise not found: %s", submitted.ExerciseID)
		}
		we := WorkoutExercise{
			ID:       uuid.New(),
			Exercise: exercise,
			Position: i + 1,
			Note:     submitted.Note,
			Sets:     []WorkoutSet{},
		}
		for _, set := range submitted.Sets {
			weight := strings.TrimSpace(set.Weight)
			if set.Reps == nil || weight == "" {
				continue
			}
			parsed, err := ParseWeight(weight)
			if err != nil {
				return nil, err
			}
			we.Sets = append(we.Sets, WorkoutSet{
				ID:        uuid.New(),
				SetNumber: len(we.Sets) + 1,
				Reps:      *set.Reps,
				WeightLbs: decimal.NewNullDecimal(parsed),
			})
		}
		workout.Exercises = append(workout.Exercises, we)
	}

	params := CreateParams{Workout: workout}
	result := &SubmitResult{Workout: &workout}
	if req.CreatePost {
		postID := uuid.New()
		params.Post = &PostDraft{
			PostID:   postID,
			Caption:  req.Caption,
			ImageURL: req.ImageURL,
		}
		result.PostID = &postID
	}

	if err := s.repo.Create(ctx, params); err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsSubmitted.Inc()
	}
	return result, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get workout %s: %w", id, err)
	}
	return w, nil
}

func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.listbyuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ws, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	if ws == nil {
		ws = []Workout{}
	}
	return ws, nil
}

// ParseWeight parses a decimal weight in pounds.
func ParseWeight(raw string) (decimal.Decimal, error) {
	w, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, errs.Invalid("Invalid weight value: %s", raw)
	}
	if w.IsNegative() {
		return decimal.Zero, errs.Invalid("Weight must not be negative: %s", raw)
	}
	return w, nil
}
