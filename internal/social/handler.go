package social

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/gearfitness/internal/auth"
	"github.com/2beens/gearfitness/internal/errs"
	"github.com/2beens/gearfitness/internal/middleware"
	"github.com/2beens/gearfitness/internal/telemetry/metrics"
	"github.com/2beens/gearfitness/internal/telemetry/tracing"
	"github.com/2beens/gearfitness/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=social_test

type feedService interface {
	Feed(ctx context.Context, viewerID uuid.UUID, page, size int) (*FeedResponse, error)
	UserPosts(ctx context.Context, viewerID, authorID uuid.UUID, page, size int) (*FeedResponse, error)
}

type interactionsService interface {
	ToggleLike(ctx context.Context, userID, postID uuid.UUID) (*LikeResult, error)
	AddComment(ctx context.Context, userID, postID uuid.UUID, req AddCommentRequest) (*Comment, error)
	Comments(ctx context.Context, postID uuid.UUID, page, size int) (*CommentsResponse, error)
}

type Handler struct {
	feed            feedService
	interactions    interactionsService
	defaultPageSize int
}

func NewHandler(feed feedService, interactions interactionsService, defaultPageSize int) *Handler {
	return &Handler{
		feed:            feed,
		interactions:    interactions,
		defaultPageSize: defaultPageSize,
	}
}

func (h *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	likesPerMin int,
) {
	r.HandleFunc("/feed", h.HandleFeed).Methods("GET", "OPTIONS").Name("feed")
	r.HandleFunc("/users/{id}/posts", h.HandleUserPosts).Methods("GET", "OPTIONS").Name("user-posts")
	r.HandleFunc("/posts/{id}/comments", h.HandleComments).Methods("GET", "OPTIONS").Name("list-comments")
	r.HandleFunc("/posts/{id}/comments", h.HandleAddComment).Methods("POST").Name("add-comment")

	// likes are cheap to spam, keep them behind a per viewer limit
	r.Handle(
		"/posts/{id}/like",
		middleware.RateLimit(rateLimiter, "like", likesPerMin, metricsManager)(http.HandlerFunc(h.HandleToggleLike)),
	).Methods("POST", "OPTIONS").Name("toggle-like")
}

func (h *Handler) pageParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	page, err := pkg.IntQuery(r, "page", 0)
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	size, err := pkg.IntQuery(r, "size", h.defaultPageSize)
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	return page, size, true
}

func (h *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.feed")
	defer span.End()

	viewerID, ok := auth.ViewerFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	page, size, ok := h.pageParams(w, r)
	if !ok {
		return
	}

	feed, err := h.feed.Feed(ctx, viewerID, page, size)
	if err != nil {
		errs.WriteHTTP(w, "feed", err)
		return
	}

	pkg.WriteJSON(w, feed, http.StatusOK)
}

func (h *Handler) HandleUserPosts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.userposts")
	defer span.End()

	authorID, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	page, size, ok := h.pageParams(w, r)
	if !ok {
		return
	}

	// anonymous viewers get uuid.Nil and never see liked flags
	viewerID, _ := auth.ViewerFrom(ctx)
	posts, err := h.feed.UserPosts(ctx, viewerID, authorID, page, size)
	if err != nil {
		errs.WriteHTTP(w, "user posts", err)
		return
	}

	pkg.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.togglelike")
	defer span.End()

	viewerID, ok := auth.ViewerFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	postID, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.interactions.ToggleLike(ctx, viewerID, postID)
	if err != nil {
		errs.WriteHTTP(w, "toggle like", err)
		return
	}

	log.Tracef("post [%s] like toggled by [%s]: %t", postID, viewerID, result.Liked)
	pkg.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) HandleComments(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.comments")
	defer span.End()

	postID, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	page, size, ok := h.pageParams(w, r)
	if !ok {
		return
	}

	comments, err := h.interactions.Comments(ctx, postID, page, size)
	if err != nil {
		errs.WriteHTTP(w, "list comments", err)
		return
	}

	pkg.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.social.addcomment")
	defer span.End()

	viewerID, ok := auth.ViewerFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	postID, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add comment, unmarshal json params: %s", err)
		http.Error(w, "invalid comment payload", http.StatusBadRequest)
		return
	}

	comment, err := h.interactions.AddComment(ctx, viewerID, postID, req)
	if err != nil {
		errs.WriteHTTP(w, "add comment", err)
		return
	}

	pkg.WriteJSON(w, comment, http.StatusCreated)
}
