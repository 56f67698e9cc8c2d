package workouts

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/gearfitness/internal/auth"
	"github.com/2beens/gearfitness/internal/errs"
	"github.com/2beens/gearfitness/internal/telemetry/tracing"
	"github.com/2beens/gearfitness/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Submit(ctx context.Context, userID uuid.UUID, req SubmitRequest) (*SubmitResult, error)
	Get(ctx context.Context, id uuid.UUID) (*Workout, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Workout, error)
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts", h.HandleSubmit).Methods("POST", "OPTIONS").Name("submit-workout")
	r.HandleFunc("/workouts/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/users/{id}/workouts", h.HandleListByUser).Methods("GET", "OPTIONS").Name("list-user-workouts")
}

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.submit")
	defer span.End()

	viewerID, ok := auth.ViewerFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("submit workout, unmarshal json params: %s", err)
		http.Error(w, "invalid workout payload", http.StatusBadRequest)
		return
	}

	result, err := h.service.Submit(ctx, viewerID, req)
	if err != nil {
		errs.WriteHTTP(w, "submit workout", err)
		return
	}

	log.Debugf("workout [%s] submitted by [%s]", result.Workout.ID, viewerID)
	pkg.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	workout, err := h.service.Get(ctx, id)
	if err != nil {
		errs.WriteHTTP(w, "get workout", err)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listbyuser")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	ws, err := h.service.ListByUser(ctx, userID)
	if err != nil {
		errs.WriteHTTP(w, "list workouts", err)
		return
	}

	pkg.WriteJSON(w, ws, http.StatusOK)
}
