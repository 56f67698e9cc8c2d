package social

import (
	"context"
	"fmt"

	"github.com/2beens/gearfitness/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=metrics_mocks_test.go -package=social_test

type metricsStore interface {
	// PostMetrics returns like counts, comment counts and the posts liked by viewerID.
	// viewerID may be uuid.Nil, then no liked set is loaded.
	PostMetrics(ctx context.Context, postIDs []uuid.UUID, viewerID uuid.UUID) (*PostMetrics, error)
}

// PostMetrics holds social counters for a set of posts.
// Posts without likes or comments are simply absent from the maps.
type PostMetrics struct {
	LikeCounts    map[uuid.UUID]int64
	CommentCounts map[uuid.UUID]int64
	Liked         map[uuid.UUID]bool
}

func NewPostMetrics() *PostMetrics {
	return &PostMetrics{
		LikeCounts:    map[uuid.UUID]int64{},
		CommentCounts: map[uuid.UUID]int64{},
		Liked:         map[uuid.UUID]bool{},
	}
}

func (m *PostMetrics) LikeCount(postID uuid.UUID) int64 {
	return m.LikeCounts[postID]
}

func (m *PostMetrics) CommentCount(postID uuid.UUID) int64 {
	return m.CommentCounts[postID]
}

func (m *PostMetrics) LikedBy(postID uuid.UUID) bool {
	return m.Liked[postID]
}

// MetricsLoader loads counters for a whole page of posts at once.
type MetricsLoader struct {
	store metricsStore
}

func NewMetricsLoader(store metricsStore) *MetricsLoader {
	return &MetricsLoader{
		store: store,
	}
}

func (l *MetricsLoader) Load(ctx context.Context, postIDs []uuid.UUID, viewerID uuid.UUID) (_ *PostMetrics, err error) {
	if len(postIDs) == 0 {
		return NewPostMetrics(), nil
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "service.social.loadmetrics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("posts", len(postIDs)))

	m, err := l.store.PostMetrics(ctx, postIDs, viewerID)
	if err != nil {
		return nil, fmt.Errorf("load post metrics: %w", err)
	}
	if m == nil {
		return NewPostMetrics(), nil
	}
	if m.LikeCounts == nil {
		m.LikeCounts = map[uuid.UUID]int64{}
	}
	if m.CommentCounts == nil {
		m.CommentCounts = map[uuid.UUID]int64{}
	}
	if m.Liked == nil {
		m.Liked = map[uuid.UUID]bool{}
	}
	return m, nil
}
