package follows

import (
	"context"
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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=follows_test

type followsService interface {
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) (*FollowResponse, error)
	FollowByUsername(ctx context.Context, followerID uuid.UUID, username string) (*FollowResponse, error)
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	Status(ctx context.Context, viewerID, userID uuid.UUID) (*FollowStatus, error)
	Followers(ctx context.Context, userID uuid.UUID) ([]UserRef, error)
	Following(ctx context.Context, userID uuid.UUID) ([]UserRef, error)
	PendingRequests(ctx context.Context, userID uuid.UUID) ([]UserRef, error)
	Activity(ctx context.Context, userID uuid.UUID) ([]UserRef, error)
	Accept(ctx context.Context, followeeID, followerID uuid.UUID) error
	Decline(ctx context.Context, followeeID, followerID uuid.UUID) error
}

type Handler struct {
	service followsService
}

func NewHandler(service followsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	followsPerMin int,
) {
	// literal paths first, {userId} would swallow them otherwise
	r.HandleFunc("/follows/requests", h.HandlePendingRequests).Methods("GET", "OPTIONS").Name("follow-requests")
	r.HandleFunc("/follows/requests/{followerId}/accept", h.HandleAccept).Methods("POST", "OPTIONS").Name("follow-accept")
	r.HandleFunc("/follows/requests/{followerId}", h.HandleDecline).Methods("DELETE", "OPTIONS").Name("follow-decline")
	r.HandleFunc("/follows/activity", h.HandleActivity).Methods("GET", "OPTIONS").Name("follow-activity")

	limited := middleware.RateLimit(rateLimiter, "follow", followsPerMin, metricsManager)
	r.Handle("/follows/username/{username}", limited(http.HandlerFunc(h.HandleFollowByUsername))).
		Methods("POST", "OPTIONS").Name("follow-username")
	r.Handle("/follows/{userId}", limited(http.HandlerFunc(h.HandleFollow))).
		Methods("POST", "OPTIONS").Name("follow")

	r.HandleFunc("/follows/{userId}", h.HandleUnfollow).Methods("DELETE").Name("unfollow")
	r.HandleFunc("/follows/{userId}/followers", h.HandleFollowers).Methods("GET", "OPTIONS").Name("followers")
	r.HandleFunc("/follows/{userId}/following", h.HandleFollowing).Methods("GET", "OPTIONS").Name("following")
	r.HandleFunc("/follows/{userId}/status", h.HandleStatus).Methods("GET", "OPTIONS").Name("follow-status")
}

func (h *Handler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.follows.follow")
	defer span.End()

	viewerID, ok := auth.ViewerFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	followeeID, err := pkg.UUIDVar(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.service.Follow(ctx, viewerID, followeeID)
	if err != nil {
		errs.WriteHTTP(w, "follow", err)
		return
	}

	log.Debugf("user [%s] followed [%s]: %s", viewerID, followeeID, resp.Status)
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleFollowByUsername(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.follows.followbyusername")
	defer span.End()

	viewerID, ok := auth.ViewerFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	username := mux.Vars(r)["username"]
	if username == "" {
		http.Error(w, "error, username missing", http.StatusBadRequest)
		return
	}

	resp, err := h.service.FollowByUsername(ctx, viewerID, username)
	if err != nil {
		errs.WriteHTTP(w, "follow by username", err)
		return
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.follows.unfollow")
	defer span.End()

	viewerID, ok := auth.ViewerFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	followeeID, err := pkg.UUIDVar(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Unfollow(ctx, viewerID, followeeID); err != nil {
		errs.WriteHTTP(w, "unfollow", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.follows.status")
	defer span.End()

	viewerID, ok := auth.ViewerFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	userID, err := pkg.UUIDVar(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	status, err := h.service.Status(ctx, viewerID, userID)
	if err != nil {
		errs.WriteHTTP(w, "follow status", err)
		return
	}

	pkg.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) HandleFollowers(w http.ResponseWriter, r *http.Request) {
	h.handleList(w, r, "followers", h.service.Followers)
}

func (h *Handler) HandleFollowing(w http.ResponseWriter, r *http.Request) {
	h.handleList(w, r, "following", h.service.Following)
}

func (h *Handler) handleList(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	list func(ctx context.Context, userID uuid.UUID) ([]UserRef, error),
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.follows."+op)
	defer span.End()

	userID, err := pkg.UUIDVar(r, "userId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	refs, err := list(ctx, userID)
	if err != nil {
		errs.WriteHTTP(w, op, err)
		return
	}

	pkg.WriteJSON(w, refs, http.StatusOK)
}

func (h *Handler) HandlePendingRequests(w http.ResponseWriter, r *http.Request) {
	h.handleOwnList(w, r, "requests", h.service.PendingRequests)
}

func (h *Handler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	h.handleOwnList(w, r, "activity", h.service.Activity)
}

func (h *Handler) handleOwnList(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	list func(ctx context.Context, userID uuid.UUID) ([]UserRef, error),
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.follows."+op)
	defer span.End()

	viewerID, ok := auth.ViewerFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	refs, err := list(ctx, viewerID)
	if err != nil {
		errs.WriteHTTP(w, op, err)
		return
	}

	pkg.WriteJSON(w, refs, http.StatusOK)
}

func (h *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	h.handleRespond(w, r, "accept", h.service.Accept)
}

func (h *Handler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	h.handleRespond(w, r, "decline", h.service.Decline)
}

func (h *Handler) handleRespond(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	respond func(ctx context.Context, followeeID, followerID uuid.UUID) error,
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.follows."+op)
	defer span.End()

	viewerID, ok := auth.ViewerFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	followerID, err := pkg.UUIDVar(r, "followerId")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := respond(ctx, viewerID, followerID); err != nil {
		errs.WriteHTTP(w, op+" follow request", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
