package users

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2beens/gearfitness/internal/auth"
	"github.com/2beens/gearfitness/internal/errs"
	"github.com/2beens/gearfitness/internal/telemetry/tracing"
	"github.com/2beens/gearfitness/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersService interface {
	Profile(ctx context.Context, viewerID, userID uuid.UUID) (*Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*Profile, error)
	SetPrivacy(ctx context.Context, userID uuid.UUID, req PrivacyRequest) (*Profile, error)
}

type Handler struct {
	service usersService
}

func NewHandler(service usersService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/users/me/profile", h.HandleMyProfile).Methods("GET", "OPTIONS").Name("my-profile")
	r.HandleFunc("/users/me", h.HandleUpdateProfile).Methods("PUT", "OPTIONS").Name("update-profile")
	r.HandleFunc("/users/me/privacy", h.HandleSetPrivacy).Methods("PATCH", "OPTIONS").Name("set-privacy")
	r.HandleFunc("/users/{id}/profile", h.HandleProfile).Methods("GET", "OPTIONS").Name("profile")
}

func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.profile")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	viewerID, _ := auth.ViewerFrom(ctx)
	profile, err := h.service.Profile(ctx, viewerID, userID)
	if err != nil {
		errs.WriteHTTP(w, "get profile", err)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) HandleMyProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.myprofile")
	defer span.End()

	viewerID, ok := auth.ViewerFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	profile, err := h.service.Profile(ctx, viewerID, viewerID)
	if err != nil {
		errs.WriteHTTP(w, "get my profile", err)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.updateprofile")
	defer span.End()

	viewerID, ok := auth.ViewerFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update profile, unmarshal json params: %s", err)
		http.Error(w, "invalid profile payload", http.StatusBadRequest)
		return
	}

	profile, err := h.service.UpdateProfile(ctx, viewerID, req)
	if err != nil {
		errs.WriteHTTP(w, "update profile", err)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) HandleSetPrivacy(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.setprivacy")
	defer span.End()

	viewerID, ok := auth.ViewerFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	// an empty body toggles
	var req PrivacyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Tracef("set privacy, unmarshal json params: %s", err)
		http.Error(w, "invalid privacy payload", http.StatusBadRequest)
		return
	}

	profile, err := h.service.SetPrivacy(ctx, viewerID, req)
	if err != nil {
		errs.WriteHTTP(w, "set privacy", err)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}
