package social

import (
	"context"
	"fmt"

	"github.com/2beens/gearfitness/internal/telemetry/metrics"
	"github.com/2beens/gearfitness/internal/telemetry/tracing"
	"github.com/2beens/gearfitness/internal/workouts"
	"github.com/2beens/gearfitness/pkg"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=feed_mocks_test.go -package=social_test

type postsStore interface {
	// PageFolloweePosts returns a page of posts authored by users the viewer follows
	// with an ACCEPTED edge, newest first, and the total number of such posts.
	PageFolloweePosts(ctx context.Context, viewerID uuid.UUID, req pkg.PageRequest) ([]Post, int, error)
	// PageUserPosts returns a page of the posts of a single author, newest first.
	// Posts of a private author are only returned to the author and to ACCEPTED followers.
	PageUserPosts(ctx context.Context, viewerID, authorID uuid.UUID, req pkg.PageRequest) ([]Post, int, error)
}

type metricsLoader interface {
	Load(ctx context.Context, postIDs []uuid.UUID, viewerID uuid.UUID) (*PostMetrics, error)
}

type FeedComposer struct {
	posts          postsStore
	loader         metricsLoader
	maxPageSize    int
	metricsManager *metrics.Manager
}

func NewFeedComposer(posts postsStore, loader metricsLoader, maxPageSize int, metricsManager *metrics.Manager) *FeedComposer {
	return &FeedComposer{
		posts:          posts,
		loader:         loader,
		maxPageSize:    maxPageSize,
		metricsManager: metricsManager,
	}
}

// Feed returns a page of posts of the viewer's accepted followees.
// A page past the end yields empty content.
func (c *FeedComposer) Feed(ctx context.Context, viewerID uuid.UUID, page, size int) (_ *FeedResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.social.feed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("viewer.id", viewerID.String()))

	req, err := newPageRequest(page, size, c.maxPageSize)
	if err != nil {
		return nil, err
	}

	posts, total, err := c.posts.PageFolloweePosts(ctx, viewerID, req)
	if err != nil {
		return nil, fmt.Errorf("page followee posts: %w", err)
	}

	resp, err := c.compose(ctx, posts, total, req, viewerID)
	if err != nil {
		return nil, err
	}

	if c.metricsManager != nil {
		c.metricsManager.CounterFeedPages.Inc()
		c.metricsManager.HistogramFeedPageSize.Observe(float64(len(resp.Posts)))
	}
	return resp, nil
}

// UserPosts returns a page of a single user's posts, as seen by viewerID (uuid.Nil when anonymous).
// A private author's page is empty for anyone but the author and ACCEPTED followers.
func (c *FeedComposer) UserPosts(ctx context.Context, viewerID, authorID uuid.UUID, page, size int) (_ *FeedResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.social.userposts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("author.id", authorID.String()))
	span.SetAttributes(attribute.String("viewer.id", viewerID.String()))

	req, err := newPageRequest(page, size, c.maxPageSize)
	if err != nil {
		return nil, err
	}

	posts, total, err := c.posts.PageUserPosts(ctx, viewerID, authorID, req)
	if err != nil {
		return nil, fmt.Errorf("page user posts: %w", err)
	}

	return c.compose(ctx, posts, total, req, viewerID)
}

// compose loads metrics for exactly the ids of the fetched page, once, and keeps the page order.
func (c *FeedComposer) compose(
	ctx context.Context,
	posts []Post,
	total int,
	req pkg.PageRequest,
	viewerID uuid.UUID,
) (*FeedResponse, error) {
	ids := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	m, err := c.loader.Load(ctx, ids, viewerID)
	if err != nil {
		return nil, err
	}

	entries := make([]FeedEntry, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, newFeedEntry(p, m))
	}

	return &FeedResponse{
		Posts:      entries,
		Pagination: pkg.NewPagination(req, total),
	}, nil
}

func newFeedEntry(p Post, m *PostMetrics) FeedEntry {
	summary := p.Workout
	if summary.BodyTags == nil {
		summary.BodyTags = []workouts.BodyTag{}
	}
	return FeedEntry{
		PostID:             p.ID,
		ImageURL:           pkg.PtrOrNil(p.ImageURL),
		Caption:            pkg.PtrOrNil(p.Caption),
		CreatedAt:          p.CreatedAt,
		UserID:             p.AuthorID,
		Username:           p.Username,
		Summary:            summary,
		LikeCount:          m.LikeCount(p.ID),
		CommentCount:       m.CommentCount(p.ID),
		LikedByCurrentUser: m.LikedBy(p.ID),
	}
}
