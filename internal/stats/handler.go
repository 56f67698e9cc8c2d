package stats

import (
	"context"
	"net/http"

	"github.com/2beens/gearfitness/internal/errs"
	"github.com/2beens/gearfitness/internal/telemetry/tracing"
	"github.com/2beens/gearfitness/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsService interface {
	WeeklyVolume(ctx context.Context, userID uuid.UUID, weeks int) ([]WeeklyVolume, error)
	DailyVolume(ctx context.Context, userID uuid.UUID, weeks int, weekStart string) ([]DailyVolume, error)
	PersonalRecords(ctx context.Context, userID uuid.UUID) ([]PersonalRecord, error)
}

type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/stats/users/{id}/volume/weekly", h.HandleWeeklyVolume).Methods("GET", "OPTIONS").Name("weekly-volume")
	r.HandleFunc("/stats/users/{id}/volume/daily", h.HandleDailyVolume).Methods("GET", "OPTIONS").Name("daily-volume")
	r.HandleFunc("/stats/users/{id}/records", h.HandlePersonalRecords).Methods("GET", "OPTIONS").Name("personal-records")
}

func (h *Handler) HandleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.weeklyvolume")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	weeks, err := pkg.IntQuery(r, "weeks", 0)
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	volumes, err := h.service.WeeklyVolume(ctx, userID, weeks)
	if err != nil {
		errs.WriteHTTP(w, "weekly volume", err)
		return
	}

	pkg.WriteJSON(w, volumes, http.StatusOK)
}

func (h *Handler) HandleDailyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.dailyvolume")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	weeks, err := pkg.IntQuery(r, "weeks", 0)
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	volumes, err := h.service.DailyVolume(ctx, userID, weeks, r.URL.Query().Get("week_start"))
	if err != nil {
		errs.WriteHTTP(w, "daily volume", err)
		return
	}

	pkg.WriteJSON(w, volumes, http.StatusOK)
}

func (h *Handler) HandlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.personalrecords")
	defer span.End()

	userID, err := pkg.UUIDVar(r, "id")
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.service.PersonalRecords(ctx, userID)
	if err != nil {
		errs.WriteHTTP(w, "personal records", err)
		return
	}

	pkg.WriteJSON(w, records, http.StatusOK)
}
