package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gearfitness/internal/errs"
	"github.com/2beens/gearfitness/internal/stats"
	"github.com/2beens/gearfitness/internal/telemetry/tracing"
	"github.com/2beens/gearfitness/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=users_test

type usersRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*User, error)
	Update(ctx context.Context, user User) error
	// FollowCounts counts ACCEPTED edges only.
	FollowCounts(ctx context.Context, userID uuid.UUID) (followers int, following int, err error)
	IsFollowing(ctx context.Context, viewerID, userID uuid.UUID) (bool, error)
}

type workoutDatesRepo interface {
	WorkoutDates(ctx context.Context, userID uuid.UUID) ([]pkg.Date, error)
}

type Service struct {
	repo     usersRepo
	dates    workoutDatesRepo
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo usersRepo, dates workoutDatesRepo) *Service {
	return &Service{
		repo:     repo,
		dates:    dates,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Profile builds the profile of userID as seen by viewerID. uuid.Nil is an anonymous viewer.
func (s *Service) Profile(ctx context.Context, viewerID, userID uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return s.profileOf(ctx, viewerID, user)
}

func (s *Service) profileOf(ctx context.Context, viewerID uuid.UUID, user *User) (*Profile, error) {
	performed, err := s.dates.WorkoutDates(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get workout dates: %w", err)
	}
	followers, following, err := s.repo.FollowCounts(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count follows: %w", err)
	}

	profile := &Profile{
		UserID:         user.ID,
		Username:       user.Username,
		WeightLbs:      user.WeightLbs,
		HeightInches:   user.HeightInches,
		Age:            user.Age,
		IsPrivate:      user.IsPrivate,
		CreatedAt:      user.CreatedAt,
		WorkoutStats:   stats.ComputeWorkoutStats(performed, pkg.DateOf(s.now())),
		FollowersCount: followers,
		FollowingCount: following,
	}

	switch viewerID {
	case user.ID:
		profile.Email = user.Email
	case uuid.Nil:
	default:
		isFollowing, err := s.repo.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return nil, fmt.Errorf("is following: %w", err)
		}
		profile.IsFollowing = &isFollowing
	}

	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.updateprofile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	if req.Username != nil {
		trimmed := strings.TrimSpace(*req.Username)
		req.Username = &trimmed
		if strings.ContainsAny(trimmed, " /") {
			return nil, errs.Invalid("invalid profile: username must not contain spaces or slashes")
		}
	}
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, errs.FromValidation("invalid profile", err)
	}
	if err := positive("weightLbs", req.WeightLbs); err != nil {
		return nil, err
	}
	if err := positive("heightInches", req.HeightInches); err != nil {
		return nil, err
	}

	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if req.apply(user) {
		log.Debugf("user [%s] changing username to [%s]", userID, user.Username)
	}
	if err := s.repo.Update(ctx, *user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return s.profileOf(ctx, userID, user)
}

// SetPrivacy sets the privacy flag, or flips it when req.IsPrivate is nil.
func (s *Service) SetPrivacy(ctx context.Context, userID uuid.UUID, req PrivacyRequest) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.users.setprivacy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if req.IsPrivate != nil {
		user.IsPrivate = *req.IsPrivate
	} else {
		user.IsPrivate = !user.IsPrivate
	}
	span.SetAttributes(attribute.Bool("private", user.IsPrivate))

	if err := s.repo.Update(ctx, *user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return s.profileOf(ctx, userID, user)
}

func positive(field string, d *decimal.Decimal) error {
	if d != nil && !d.IsPositive() {
		return errs.Invalid("invalid profile: %s must be positive", field)
	}
	return nil
}
