package social

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
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=interactions_mocks_test.go -package=social_test

type interactionsStore interface {
	// ToggleLike removes the like of userID on postID if present, otherwise adds it,
	// as a single atomic operation.
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (LikeResult, error)
	AddComment(ctx context.Context, comment Comment) (*Comment, error)
	PageComments(ctx context.Context, postID uuid.UUID, req pkg.PageRequest) ([]Comment, int, error)
	PostExists(ctx context.Context, postID uuid.UUID) (bool, error)
}

type AddCommentRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

type Interactions struct {
	store          interactionsStore
	validate       *validator.Validate
	maxPageSize    int
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewInteractions(store interactionsStore, maxPageSize int, metricsManager *metrics.Manager) *Interactions {
	return &Interactions{
		store:          store,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		maxPageSize:    maxPageSize,
		metricsManager: metricsManager,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *Interactions) WithClock(now func() time.Time) *Interactions {
	s.now = now
	return s
}

func (s *Interactions) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (_ *LikeResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.social.togglelike")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("post.id", postID.String()))
	span.SetAttributes(attribute.String("user.id", userID.String()))

	result, err := s.store.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}

	if s.metricsManager != nil {
		label := "unliked"
		if result.Liked {
			label = "liked"
		}
		s.metricsManager.CounterLikeToggles.WithLabelValues(label).Inc()
	}
	return &result, nil
}

func (s *Interactions) AddComment(ctx context.Context, userID, postID uuid.UUID, req AddCommentRequest) (_ *Comment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.social.addcomment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("post.id", postID.String()))

	req.Body = strings.TrimSpace(req.Body)
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, errs.FromValidation("Invalid comment", err)
	}

	comment, err := s.store.AddComment(ctx, Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		Body:      req.Body,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return comment, nil
}

// Comments returns a page of comments of a post, newest first.
func (s *Interactions) Comments(ctx context.Context, postID uuid.UUID, page, size int) (_ *CommentsResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.social.comments")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("post.id", postID.String()))

	req, err := newPageRequest(page, size, s.maxPageSize)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.PostExists(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("check post: %w", err)
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comments, total, err := s.store.PageComments(ctx, postID, req)
	if err != nil {
		return nil, fmt.Errorf("page comments: %w", err)
	}
	if comments == nil {
		comments = []Comment{}
	}

	return &CommentsResponse{
		Comments:   comments,
		Pagination: pkg.NewPagination(req, total),
	}, nil
}
