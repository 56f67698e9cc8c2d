package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/gearfitness/internal/auth"
	"github.com/2beens/gearfitness/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

const TokenHeader = "X-GEAR-TOKEN"

type sessionResolver interface {
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
}

type AuthMiddlewareHandler struct {
	sessions               sessionResolver
	allowedPaths           map[string]bool
	anonymousReadPrefixes  []string
	anonymousReadSuffixes  []string
	viewerOnlyReadPrefixes []string
}

func NewAuthMiddlewareHandler(sessions sessionResolver) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		sessions: sessions,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,
		},
		// public reads, a viewer is attached when a valid token is sent
		anonymousReadPrefixes: []string{
			"/stats/users/",
			"/workouts/",
			"/users/",
			"/posts/",
		},
		anonymousReadSuffixes: []string{
			"/followers",
			"/following",
		},
		viewerOnlyReadPrefixes: []string{
			"/follows/requests",
			"/follows/activity",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	return h.allowedPaths[path]
}

func (h *AuthMiddlewareHandler) anonymousAllowed(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	path := r.URL.Path
	for _, prefix := range h.viewerOnlyReadPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	for _, prefix := range h.anonymousReadPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	if strings.HasPrefix(path, "/follows/") {
		for _, suffix := range h.anonymousReadSuffixes {
			if strings.HasSuffix(path, suffix) {
				return true
			}
		}
	}
	return false
}

// AuthCheck resolves the session token into the viewer of the request.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get(TokenHeader)
			if authToken == "" {
				if h.anonymousAllowed(r) {
					span.SetStatus(codes.Ok, "anonymous")
					next.ServeHTTP(w, r)
					return
				}
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			viewerID, err := h.sessions.Resolve(ctx, authToken)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidSession) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					span.SetStatus(codes.Error, "invalid-session")
				} else {
					log.Errorf("[failed session check] => %s: %s", r.URL.Path, err)
					span.SetStatus(codes.Error, "session-check-err")
					span.RecordError(err)
				}
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithViewer(r.Context(), viewerID)))
		})
	}
}
