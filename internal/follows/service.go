package follows

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gearfitness/internal/errs"
	"github.com/2beens/gearfitness/internal/telemetry/metrics"
	"github.com/2beens/gearfitness/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=follows_test

type followsStore interface {
	UserByID(ctx context.Context, id uuid.UUID) (*User, error)
	UserByUsername(ctx context.Context, username string) (*User, error)
	// FindEdge returns nil when there is no edge between the two users.
	FindEdge(ctx context.Context, followerID, followeeID uuid.UUID) (*Edge, error)
	InsertEdge(ctx context.Context, edge Edge) error
	UpdateEdge(ctx context.Context, edge Edge) error
	DeleteEdge(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	// Followers lists users following userID with the given status, newest edge first.
	Followers(ctx context.Context, userID uuid.UUID, status Status) ([]UserRef, error)
	// Following lists users followed by userID with the given status, newest edge first.
	Following(ctx context.Context, userID uuid.UUID, status Status) ([]UserRef, error)
}

type Service struct {
	store          followsStore
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(store followsStore, metricsManager *metrics.Manager) *Service {
	return &Service{
		store:          store,
		metricsManager: metricsManager,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Follow creates the edge follower -> followee, ACCEPTED for public and PENDING for private accounts.
func (s *Service) Follow(ctx context.Context, followerID, followeeID uuid.UUID) (_ *FollowResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.follows.follow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("follower.id", followerID.String()))
	span.SetAttributes(attribute.String("followee.id", followeeID.String()))

	if followerID == followeeID {
		return nil, ErrSelfFollow
	}

	followee, err := s.store.UserByID(ctx, followeeID)
	if err != nil {
		return nil, fmt.Errorf("get followee: %w", err)
	}
	return s.follow(ctx, followerID, followee)
}

func (s *Service) FollowByUsername(ctx context.Context, followerID uuid.UUID, username string) (_ *FollowResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.follows.followbyusername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("follower.id", followerID.String()))

	username = strings.TrimSpace(username)
	followee, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errs.ErrorCode(err) == errs.ENOTFOUND {
			return nil, errs.NotFound("User not found: %s", username)
		}
		return nil, fmt.Errorf("get followee: %w", err)
	}
	if followee.ID == followerID {
		return nil, ErrSelfFollow
	}
	return s.follow(ctx, followerID, followee)
}

func (s *Service) follow(ctx context.Context, followerID uuid.UUID, followee *User) (*FollowResponse, error) {
	existing, err := s.store.FindEdge(ctx, followerID, followee.ID)
	if err != nil {
		return nil, fmt.Errorf("find edge: %w", err)
	}
	if existing != nil {
		return nil, existingEdgeError(existing.Status, followee.Username)
	}

	if _, err := s.store.UserByID(ctx, followerID); err != nil {
		if errs.ErrorCode(err) == errs.ENOTFOUND {
			return nil, errs.NotFound("Follower not found")
		}
		return nil, fmt.Errorf("get follower: %w", err)
	}

	edge := NewEdge(followerID, followee.ID, followee.IsPrivate, s.now())
	if err := s.store.InsertEdge(ctx, edge); err != nil {
		if errors.Is(err, ErrEdgeExists) {
			return nil, s.concurrentEdgeError(ctx, followerID, followee)
		}
		return nil, fmt.Errorf("insert edge: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterFollowRequests.WithLabelValues(strings.ToLower(string(edge.Status))).Inc()
	}
	return newFollowResponse(followee, edge.Status), nil
}

// concurrentEdgeError reloads an edge that appeared between FindEdge and InsertEdge,
// so the conflict names its current status.
func (s *Service) concurrentEdgeError(ctx context.Context, followerID uuid.UUID, followee *User) error {
	existing, err := s.store.FindEdge(ctx, followerID, followee.ID)
	if err != nil {
		return fmt.Errorf("find concurrent edge: %w", err)
	}
	if existing == nil {
		// created and deleted again in between
		return ErrEdgeExists
	}
	return existingEdgeError(existing.Status, followee.Username)
}

// Unfollow deletes the edge regardless of its status.
func (s *Service) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.follows.unfollow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	deleted, err := s.store.DeleteEdge(ctx, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("delete edge: %w", err)
	}
	if !deleted {
		return ErrNotFollowing
	}
	return nil
}

func (s *Service) Status(ctx context.Context, viewerID, userID uuid.UUID) (_ *FollowStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.follows.status")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	edge, err := s.store.FindEdge(ctx, viewerID, userID)
	if err != nil {
		return nil, fmt.Errorf("find edge: %w", err)
	}
	if edge == nil {
		return &FollowStatus{}, nil
	}
	return &FollowStatus{
		IsFollowing: edge.Status == StatusAccepted,
		Status:      strings.ToLower(string(edge.Status)),
	}, nil
}

// Followers lists the ACCEPTED followers of userID.
func (s *Service) Followers(ctx context.Context, userID uuid.UUID) (_ []UserRef, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.follows.followers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return nonNil(s.store.Followers(ctx, userID, StatusAccepted))
}

// Following lists the users userID follows with an ACCEPTED edge.
func (s *Service) Following(ctx context.Context, userID uuid.UUID) (_ []UserRef, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.follows.following")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return nonNil(s.store.Following(ctx, userID, StatusAccepted))
}

// PendingRequests lists incoming follow requests awaiting a decision.
func (s *Service) PendingRequests(ctx context.Context, userID uuid.UUID) (_ []UserRef, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.follows.pending")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return nonNil(s.store.Followers(ctx, userID, StatusPending))
}

// Activity lists accepted followers, newest first.
func (s *Service) Activity(ctx context.Context, userID uuid.UUID) (_ []UserRef, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.follows.activity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return nonNil(s.store.Followers(ctx, userID, StatusAccepted))
}

func (s *Service) Accept(ctx context.Context, followeeID, followerID uuid.UUID) error {
	return s.respond(ctx, followeeID, followerID, true)
}

func (s *Service) Decline(ctx context.Context, followeeID, followerID uuid.UUID) error {
	return s.respond(ctx, followeeID, followerID, false)
}

func (s *Service) respond(ctx context.Context, followeeID, followerID uuid.UUID, accept bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.follows.respond")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Bool("accept", accept))

	edge, err := s.store.FindEdge(ctx, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("find edge: %w", err)
	}
	if edge == nil {
		return ErrFollowRequestNotFound
	}

	changed, err := edge.Respond(accept, s.now())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := s.store.UpdateEdge(ctx, *edge); err != nil {
		return fmt.Errorf("update edge: %w", err)
	}
	return nil
}

func (s *Service) ensureUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		if errs.ErrorCode(err) == errs.ENOTFOUND {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}
	return nil
}

func nonNil(refs []UserRef, err error) ([]UserRef, error) {
	if err != nil {
		return nil, fmt.Errorf("list edges: %w", err)
	}
	if refs == nil {
		refs = []UserRef{}
	}
	return refs, nil
}
