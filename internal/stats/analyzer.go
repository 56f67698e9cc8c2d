package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gearfitness/internal/telemetry/tracing"
	"github.com/2beens/gearfitness/internal/workouts"
	"github.com/2beens/gearfitness/pkg"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=stats_test

type workoutsLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]workouts.Workout, error)
}

type liftsRepo interface {
	BestLifts(ctx context.Context, userID uuid.UUID, names []string) ([]Lift, error)
}

// Analyzer computes volume series and personal records over a user's full history.
// Nothing is cached; every call reads the history again.
type Analyzer struct {
	workouts     workoutsLister
	lifts        liftsRepo
	trackedLifts []string
	weekStart    time.Weekday
	now          func() time.Time
}

func NewAnalyzer(
	workouts workoutsLister,
	lifts liftsRepo,
	trackedLifts []string,
	weekStart time.Weekday,
) *Analyzer {
	return &Analyzer{
		workouts:     workouts,
		lifts:        lifts,
		trackedLifts: trackedLifts,
		weekStart:    weekStart,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

func (a *Analyzer) TrackedLifts() []string {
	return a.trackedLifts
}

func (a *Analyzer) today() pkg.Date {
	return pkg.DateOf(a.now())
}

func (a *Analyzer) WeeklyVolume(ctx context.Context, userID uuid.UUID, weeks int) (_ []WeeklyVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.weeklyvolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.Int("weeks", weeks))

	ws, err := a.workouts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return WeeklyVolumes(ws, weeks), nil
}

// DailyVolume uses the configured week start unless weekStart names another day.
func (a *Analyzer) DailyVolume(ctx context.Context, userID uuid.UUID, weeks int, weekStart string) (_ []DailyVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.dailyvolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.Int("weeks", weeks))

	start := a.weekStart
	if strings.TrimSpace(weekStart) != "" {
		start, err = ParseWeekday(weekStart)
		if err != nil {
			return nil, err
		}
	}

	ws, err := a.workouts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return DailyVolumes(ws, weeks, start, a.today()), nil
}

func (a *Analyzer) PersonalRecords(ctx context.Context, userID uuid.UUID) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.personalrecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	lifts, err := a.lifts.BestLifts(ctx, userID, a.trackedLifts)
	if err != nil {
		return nil, fmt.Errorf("best lifts: %w", err)
	}
	return SelectRecords(a.trackedLifts, lifts), nil
}
